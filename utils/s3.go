package utils

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

var s3Client *s3.Client

// InitS3 prepares the archival client. Archival is optional: when S3_BUCKET
// is not configured the service runs without it and this is a no-op.
func InitS3() {
	if os.Getenv("S3_BUCKET") == "" {
		log.Println("S3_BUCKET not set, image archival disabled")
		return
	}

	s3Region := os.Getenv("S3_REGION")
	if s3Region == "" {
		s3Region = os.Getenv("AWS_REGION") // fallback
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(s3Region))
	if err != nil {
		log.Printf("unable to load AWS config for S3, image archival disabled: %v", err)
		return
	}

	s3Client = s3.NewFromConfig(cfg)
}

// ArchiveMealImage stores an uploaded meal photo under meals/. Best effort:
// failures are logged and never fail the analysis that triggered them.
func ArchiveMealImage(data []byte, contentType string) {
	if s3Client == nil {
		return
	}

	var ext string
	switch contentType {
	case "image/jpeg", "image/jpg":
		ext = ".jpg"
	case "image/png":
		ext = ".png"
	case "image/webp":
		ext = ".webp"
	default:
		ext = ".bin"
	}

	key := fmt.Sprintf("meals/%s%s", uuid.NewString(), ext)

	_, err := s3Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(os.Getenv("S3_BUCKET")),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		log.Printf("failed to archive meal image: %v", err)
	}
}
