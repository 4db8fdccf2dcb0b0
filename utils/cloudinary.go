package utils

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

var cld *cloudinary.Cloudinary

// InitCloudinary initializes the Cloudinary connection
func InitCloudinary() error {
	var err error

	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return fmt.Errorf("the Cloudinary environment variables are not set")
	}

	cld, err = cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return fmt.Errorf("error initializing Cloudinary: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err = cld.Admin.Ping(ctx)
	if err != nil {
		return fmt.Errorf("error verifying the Cloudinary connection: %v", err)
	}

	LogSuccess("Cloudinary initialized and connection verified")
	return nil
}

func boolPointer(b bool) *bool {
	return &b
}

func isValidImageType(filename string) bool {
	validExtensions := []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp", ".svg"}
	lowerFilename := strings.ToLower(filename)

	for _, ext := range validExtensions {
		if strings.HasSuffix(lowerFilename, ext) {
			return true
		}
	}
	return false
}

// UploadProjectImage uploads a project image to Cloudinary and returns
// its public id and delivery URL.
func UploadProjectImage(file *multipart.FileHeader) (string, string, error) {
	if !isValidImageType(file.Filename) {
		return "", "", fmt.Errorf("unsupported image format, use JPG, PNG, GIF, WEBP, BMP or SVG")
	}

	// 10MB max
	if file.Size > 10*1024*1024 {
		return "", "", fmt.Errorf("image too large, maximum 10MB allowed")
	}

	if cld == nil {
		if err := InitCloudinary(); err != nil {
			return "", "", err
		}
	}

	src, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("error opening the file: %v", err)
	}
	defer src.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	publicID := fmt.Sprintf("project_%d", time.Now().Unix())

	uploadParams := uploader.UploadParams{
		Folder:         "projects",
		PublicID:       publicID,
		UseFilename:    boolPointer(true),
		UniqueFilename: boolPointer(true),
		Overwrite:      boolPointer(true),
		ResourceType:   "auto",
	}

	uploadResult, err := cld.Upload.Upload(ctx, src, uploadParams)
	if err != nil {
		return "", "", fmt.Errorf("error uploading to Cloudinary: %v", err)
	}

	return uploadResult.PublicID, uploadResult.SecureURL, nil
}

// DeleteProjectImage removes an uploaded image. Best-effort: the project
// row is already gone when this runs.
func DeleteProjectImage(publicID string) error {
	if cld == nil {
		if err := InitCloudinary(); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	return err
}

// ImageURL resolves the delivery URL for a stored public id.
func ImageURL(publicID string) string {
	if publicID == "" || cld == nil {
		return ""
	}

	img, err := cld.Image(publicID)
	if err != nil {
		LogError(err, "Error building the image URL for "+publicID)
		return ""
	}
	url, err := img.String()
	if err != nil {
		LogError(err, "Error building the image URL for "+publicID)
		return ""
	}
	return url
}
