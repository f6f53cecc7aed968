package storage

import (
	"bytes"
	"context"
	"path"

	"gst_invoice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const pdfContentType = "application/pdf"

type s3PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3InvoiceStorage uploads invoices to s3://<bucket>/<prefix>/<filename>.
type S3InvoiceStorage struct {
	client s3PutObjectAPI
	bucket string
	prefix string
}

var _ interfaces.IInvoiceStorage = (*S3InvoiceStorage)(nil)

func NewS3InvoiceStorage(client s3PutObjectAPI, bucket, prefix string) *S3InvoiceStorage {
	return &S3InvoiceStorage{client: client, bucket: bucket, prefix: prefix}
}

func (s *S3InvoiceStorage) Save(ctx context.Context, filename string, pdf []byte) (string, error) {
	key := path.Join(s.prefix, filename)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(pdf),
		ContentLength: aws.Int64(int64(len(pdf))),
		ContentType:   aws.String(pdfContentType),
	})
	if err != nil {
		return "", err
	}
	return "s3://" + s.bucket + "/" + key, nil
}
