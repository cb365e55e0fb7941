package libs

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryEnabled reports whether remote media storage is configured.
func CloudinaryEnabled() bool {
	if os.Getenv("CLOUDINARY_URL") != "" {
		return true
	}
	return os.Getenv("CLOUDINARY_CLOUD_NAME") != "" &&
		os.Getenv("CLOUDINARY_API_KEY") != "" &&
		os.Getenv("CLOUDINARY_API_SECRET") != ""
}

// UploadToCloudinary pushes a locally stored upload to Cloudinary and
// returns the secure URL.
func UploadToCloudinary(localPath string) (string, error) {
	if _, err := os.Stat(localPath); err != nil {
		return "", err
	}

	var cld *cloudinary.Cloudinary
	var err error
	if url := os.Getenv("CLOUDINARY_URL"); url != "" {
		cld, err = cloudinary.NewFromURL(url)
	} else {
		cld, err = cloudinary.NewFromParams(
			os.Getenv("CLOUDINARY_CLOUD_NAME"),
			os.Getenv("CLOUDINARY_API_KEY"),
			os.Getenv("CLOUDINARY_API_SECRET"),
		)
	}
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, err := cld.Upload.Upload(ctx, localPath, uploader.UploadParams{Folder: "furnish-shop"})
	if err != nil {
		return "", err
	}
	if resp.SecureURL == "" {
		return "", errors.New("cloudinary returned an empty URL")
	}
	return resp.SecureURL, nil
}
