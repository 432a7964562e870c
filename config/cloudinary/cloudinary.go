package cloudinary

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	cld "github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

var instance *cld.Cloudinary

const uploadFolder = "campaigns"

// Uploaded images are capped at 1200px wide at the host.
const uploadTransformation = "w_1200,c_limit,q_auto"

/*
* Init wires the media host from env. Missing credentials only warn;
* the API still serves everything except image upload.
 */
func Init() error {
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		log.Println("Cloudinary environment variables are missing. Image upload may not work properly.")
	}

	c, err := cld.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return err
	}
	instance = c
	return nil
}

type ImageData struct {
	URL      string
	PublicID string
}

// UploadImage pushes one image to the campaigns folder and returns its
// hosted URL plus the publicId used for later deletion.
func UploadImage(ctx context.Context, file io.Reader) (*ImageData, error) {
	if instance == nil {
		return nil, fmt.Errorf("cloudinary is not initialized")
	}

	publicID := fmt.Sprintf("campaign_%d_%s", time.Now().UnixMilli(), randomSuffix(7))

	result, err := instance.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         uploadFolder,
		PublicID:       publicID,
		Transformation: uploadTransformation,
	})
	if err != nil {
		return nil, err
	}

	return &ImageData{
		URL:      result.SecureURL,
		PublicID: result.PublicID,
	}, nil
}

/*
* DestroyImage is best effort. Orphaned media at the host is an accepted
* failure mode, so callers only log the returned error.
 */
func DestroyImage(ctx context.Context, publicID string) error {
	if instance == nil {
		return fmt.Errorf("cloudinary is not initialized")
	}
	_, err := instance.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	return err
}

const suffixChars = "abcdefghijklmnopqrstuvwxyz0123456789"

func randomSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = suffixChars[rand.Intn(len(suffixChars))]
	}
	return string(b)
}
