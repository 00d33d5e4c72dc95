package email

import (
	"context"
	"fmt"
	"tabnews/internal/core/domain/activation"
	e "tabnews/internal/core/domain/errors"
	"tabnews/internal/core/domain/user"
	"tabnews/internal/endpoints"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const charset = "UTF-8"

const activationSubject = "Ative seu cadastro no TabNews"

const activationBodyTemplate = `%s, clique no link abaixo para ativar seu cadastro no TabNews:

%s

Caso você não tenha feito esta requisição, ignore esse email.

Atenciosamente,
Equipe TabNews
Rua Antônio da Veiga, 495, Blumenau, SC, 89012-500`

type ActivationEmailSender struct {
	ses *ses.Client
	// This address must be verified with Amazon SES.
	senderName    string
	senderAddress string
	endpoints     endpoints.Builder
}

func NewActivationEmailSender(
	awsConfig aws.Config,
	senderName string,
	senderAddress string,
	endpoints endpoints.Builder,
) *ActivationEmailSender {
	if senderAddress == "" {
		panic(e.NewNilArgumentError("senderAddress"))
	}
	return &ActivationEmailSender{
		ses:           ses.NewFromConfig(awsConfig),
		senderName:    senderName,
		senderAddress: senderAddress,
		endpoints:     endpoints,
	}
}

func (s *ActivationEmailSender) SendActivationEmail(
	ctx context.Context,
	u user.User,
	tokenID activation.TokenID,
) error {
	if u.Email == "" {
		return e.NewInvalidStateError(fmt.Sprintf("email is not set for user %d", u.ID))
	}

	source := fmt.Sprintf("%s <%s>", s.senderName, s.senderAddress)
	subject := activationSubject
	body := composeActivationBody(u.Username, s.endpoints.ActivationPage(tokenID))
	recipient := string(u.Email)

	_, err := s.ses.SendEmail(
		ctx,
		&ses.SendEmailInput{
			Source: &source,
			Destination: &types.Destination{
				ToAddresses: []string{recipient},
			},
			Message: &types.Message{
				Subject: &types.Content{
					Data:    &subject,
					Charset: aws.String(charset),
				},
				Body: &types.Body{
					Text: &types.Content{
						Data:    &body,
						Charset: aws.String(charset),
					},
				},
			},
		},
	)
	return err
}

func composeActivationBody(username string, activationPageURL string) string {
	return fmt.Sprintf(activationBodyTemplate, username, activationPageURL)
}
