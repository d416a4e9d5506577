// Package s3store implementa el BlobStore de documentos sobre S3 (o un
// servicio compatible como MinIO). Los metadatos de negocio viajan como
// user metadata del objeto: hora-envio, nota-descargada y veces-enviado.
package s3store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/tu-usuario/notas-venta-api/internal/application/notas"
	"github.com/tu-usuario/notas-venta-api/internal/domain"
	"github.com/tu-usuario/notas-venta-api/internal/domain/entity"
)

// Llaves de user metadata en S3 (siempre minúsculas; S3 las normaliza así).
const (
	metaHoraEnvio    = "hora-envio"
	metaDescargada   = "nota-descargada"
	metaVecesEnviado = "veces-enviado"
)

const contentTypePDF = "application/pdf"

var _ notas.BlobStore = (*Store)(nil)

// Store adaptador S3 del puerto notas.BlobStore.
type Store struct {
	client *s3.Client
	bucket string
}

// New construye el adaptador sobre un cliente S3 ya configurado.
func New(client *s3.Client, bucket string) *Store {
	return &Store{client: client, bucket: bucket}
}

// Head devuelve los metadatos del objeto, o domain.ErrNotFound si la llave
// no existe. Cualquier otra falla se reporta envuelta.
func (s *Store) Head(ctx context.Context, key string) (*entity.DocumentoMeta, error) {
	out, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if esNoExiste(err) {
			return nil, fmt.Errorf("%w: objeto %s", domain.ErrNotFound, key)
		}
		return nil, fmt.Errorf("s3: head %s: %w", key, err)
	}
	meta := metaDesdeS3(out.Metadata)
	return &meta, nil
}

// Put escribe el objeto con sus metadatos, sobrescribiendo por completo
// cualquier versión anterior (contenido y metadatos).
func (s *Store) Put(ctx context.Context, key string, data []byte, meta entity.DocumentoMeta) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentTypePDF),
		Metadata:    metaHaciaS3(meta),
	})
	if err != nil {
		return fmt.Errorf("s3: put %s: %w", key, err)
	}
	return nil
}

// Get devuelve los bytes y los metadatos del objeto, o domain.ErrNotFound.
func (s *Store) Get(ctx context.Context, key string) ([]byte, *entity.DocumentoMeta, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if esNoExiste(err) {
			return nil, nil, fmt.Errorf("%w: objeto %s", domain.ErrNotFound, key)
		}
		return nil, nil, fmt.Errorf("s3: get %s: %w", key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("s3: leer cuerpo de %s: %w", key, err)
	}
	meta := metaDesdeS3(out.Metadata)
	return data, &meta, nil
}

// ReplaceMeta reescribe los metadatos del objeto sin tocar su contenido:
// un copy sobre sí mismo con MetadataDirective=REPLACE, igual que hace la
// consola de AWS.
func (s *Store) ReplaceMeta(ctx context.Context, key string, meta entity.DocumentoMeta) error {
	_, err := s.client.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:            aws.String(s.bucket),
		Key:               aws.String(key),
		CopySource:        aws.String(url.PathEscape(s.bucket + "/" + key)),
		Metadata:          metaHaciaS3(meta),
		MetadataDirective: types.MetadataDirectiveReplace,
		ContentType:       aws.String(contentTypePDF),
	})
	if err != nil {
		if esNoExiste(err) {
			return fmt.Errorf("%w: objeto %s", domain.ErrNotFound, key)
		}
		return fmt.Errorf("s3: reemplazar metadatos de %s: %w", key, err)
	}
	return nil
}

// esNoExiste distingue la ausencia del objeto (condición esperada para el
// sondeo previo al primer guardado) de cualquier otra falla del servicio.
func esNoExiste(err error) bool {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var notFound *types.NotFound
	if errors.As(err, &notFound) {
		return true
	}
	// HeadObject no siempre deserializa al tipo modelado; revisar el código.
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		return code == "NotFound" || code == "NoSuchKey"
	}
	return false
}

func metaHaciaS3(meta entity.DocumentoMeta) map[string]string {
	return map[string]string{
		metaHoraEnvio:    meta.HoraEnvio.UTC().Format(time.RFC3339),
		metaDescargada:   strconv.FormatBool(meta.Descargada),
		metaVecesEnviado: strconv.Itoa(meta.VecesEnviado),
	}
}

// metaDesdeS3 parsea con tolerancia: un campo ausente o malformado queda en
// su valor cero en lugar de fallar la lectura del documento.
func metaDesdeS3(m map[string]string) entity.DocumentoMeta {
	var meta entity.DocumentoMeta
	if v, ok := m[metaHoraEnvio]; ok {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			meta.HoraEnvio = t
		}
	}
	if v, ok := m[metaDescargada]; ok {
		meta.Descargada = v == "true"
	}
	if v, ok := m[metaVecesEnviado]; ok {
		if n, err := strconv.Atoi(v); err == nil {
			meta.VecesEnviado = n
		}
	}
	return meta
}
