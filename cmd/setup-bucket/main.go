// Command setup-bucket prepares the S3/MinIO bucket that holds contact photos:
// creates it when missing, makes the photo prefix publicly readable and
// checks that the configured key can write and delete objects.
package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"bizmanager/domain/ports"
	"bizmanager/infrastructure/storage"
	"bizmanager/pkg/config"
)

const probeKey = ports.ContactPhotoPrefix + "/.setup-probe"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	s3 := cfg.Storage.S3

	fmt.Printf("Endpoint: %s\nBucket:   %s\nRegion:   %s\n\n", s3.Endpoint, s3.Bucket, s3.Region)

	client, err := minio.New(s3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(s3.AccessKey, s3.SecretKey, ""),
		Secure: s3.UseSSL,
		Region: s3.Region,
	})
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, s3.Bucket)
	if err != nil {
		log.Fatalf("Failed to check bucket: %v", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, s3.Bucket, minio.MakeBucketOptions{Region: s3.Region}); err != nil {
			log.Fatalf("Failed to create bucket: %v", err)
		}
		fmt.Printf("✓ Bucket '%s' created\n", s3.Bucket)
	} else {
		fmt.Printf("✓ Bucket '%s' exists\n", s3.Bucket)
	}

	if s3.PublicURL != "" {
		fmt.Println("• S3_PUBLIC_URL is set, photos are served from it; bucket policy left unchanged")
	} else {
		policy, err := storage.PublicReadPolicy(s3.Bucket, ports.ContactPhotoPrefix)
		if err != nil {
			log.Fatalf("Failed to build policy: %v", err)
		}
		if err := client.SetBucketPolicy(ctx, s3.Bucket, policy); err != nil {
			log.Printf("⚠️  Failed to set policy: %v", err)
		} else {
			fmt.Printf("✓ Public read enabled for %s/*\n", ports.ContactPhotoPrefix)
		}
	}

	fmt.Print("Testing PutObject... ")
	content := []byte("bizmanager setup probe")
	if _, err := client.PutObject(ctx, s3.Bucket, probeKey, bytes.NewReader(content), int64(len(content)),
		minio.PutObjectOptions{ContentType: "text/plain"}); err != nil {
		log.Fatalf("failed: %v", err)
	}
	fmt.Println("✓ OK")

	fmt.Print("Testing RemoveObject... ")
	if err := client.RemoveObject(ctx, s3.Bucket, probeKey, minio.RemoveObjectOptions{}); err != nil {
		log.Fatalf("failed: %v", err)
	}
	fmt.Println("✓ OK")

	fmt.Println("\n✓ Bucket ready for contact photos")
}
