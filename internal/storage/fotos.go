package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

// Fotos maiores que isso são reduzidas mantendo a proporção.
const ladoMaximo = 800

// FotoStorage normaliza fotos de pets (redimensiona e converte para webp)
// e as grava em um bucket compatível com S3.
type FotoStorage struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

type FotoConfig struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	BaseURL   string
}

func NewFotoStorage(cfg FotoConfig) *FotoStorage {
	if cfg.Bucket == "" {
		return nil
	}

	opts := s3.Options{
		Region: cfg.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
		UsePathStyle: true,
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}

	return &FotoStorage{
		client:  s3.New(opts),
		bucket:  cfg.Bucket,
		baseURL: cfg.BaseURL,
	}
}

func (f *FotoStorage) Habilitado() bool {
	return f != nil
}

// Upload decodifica a imagem, reduz para no máximo ladoMaximo pixels no
// maior lado, codifica em webp e envia ao bucket. Devolve a URL pública.
func (f *FotoStorage) Upload(ctx context.Context, petID uint, r io.Reader) (string, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("imagem inválida: %w", err)
	}

	img = redimensionar(img)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 80}); err != nil {
		return "", err
	}

	key := fmt.Sprintf("pets/%d/foto.webp", petID)

	_, err = f.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(f.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/%s", f.baseURL, key), nil
}

func redimensionar(img image.Image) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= ladoMaximo && h <= ladoMaximo {
		return img
	}

	if w >= h {
		h = h * ladoMaximo / w
		w = ladoMaximo
	} else {
		w = w * ladoMaximo / h
		h = ladoMaximo
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
