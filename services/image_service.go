package services

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	config "github.com/visheshkakadiya/hotel-management/configs"
)

const imageFolder = "hotelManagement"

type UploadedImage struct {
	URL      string
	PublicID string
}

// UploadImage pushes an avatar or room photo to Cloudinary and returns
// the hosted URL plus the id needed to delete it later.
func UploadImage(file *multipart.FileHeader) (*UploadedImage, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	result, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{
		Folder: imageFolder,
	})
	if err != nil {
		return nil, err
	}

	return &UploadedImage{URL: result.SecureURL, PublicID: result.PublicID}, nil
}

// DeleteImage removes a previously uploaded image. Callers treat
// failures as best-effort cleanup.
func DeleteImage(publicID string) error {
	if publicID == "" {
		return nil
	}

	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err = cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: "image",
	})
	return err
}
