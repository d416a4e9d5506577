// Package sns implementa el Notificador de avisos de nota sobre Amazon SNS.
package sns

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"

	"github.com/tu-usuario/notas-venta-api/internal/application/notas"
)

const mensajeAviso = "Nueva nota de venta creada o actualizada"

var _ notas.Notificador = (*Publisher)(nil)

// Publisher publica avisos de nota en un tópico SNS FIFO. El MessageGroupId
// es el folio de la nota: los avisos de una misma nota se entregan en orden,
// entre notas distintas no hay garantía.
type Publisher struct {
	client   *sns.Client
	topicARN string
}

// New construye el publicador sobre un cliente SNS ya configurado.
func New(client *sns.Client, topicARN string) *Publisher {
	return &Publisher{client: client, topicARN: topicARN}
}

// cuerpoAviso es el formato del mensaje que consumen los suscriptores.
type cuerpoAviso struct {
	Message string `json:"message"`
	Client  string `json:"client"`
	Folio   string `json:"folio"`
	S3Link  string `json:"s3_link"`
}

// Publicar envía el aviso al tópico.
func (p *Publisher) Publicar(ctx context.Context, aviso notas.AvisoNota) error {
	cuerpo, err := json.Marshal(cuerpoAviso{
		Message: mensajeAviso,
		Client:  aviso.RazonSocial,
		Folio:   aviso.Folio,
		S3Link:  aviso.Enlace,
	})
	if err != nil {
		return fmt.Errorf("sns: serializar aviso: %w", err)
	}

	_, err = p.client.Publish(ctx, &sns.PublishInput{
		TopicArn:       aws.String(p.topicARN),
		Message:        aws.String(string(cuerpo)),
		MessageGroupId: aws.String(aviso.Folio),
	})
	if err != nil {
		return fmt.Errorf("sns: publicar aviso de folio %s: %w", aviso.Folio, err)
	}
	return nil
}
