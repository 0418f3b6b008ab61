package email

import (
	"context"
	"encoding/json"
	"net/url"

	"swapcloset/internal/core/domain/account"
	c "swapcloset/internal/core/domain/common"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

type ResetTokenSender struct {
	ses *ses.Client
	// This address must be verified with Amazon SES.
	sender                string
	passwordResetTemplate string
	passwordResetBaseUrl  url.URL
}

func NewResetTokenSender(
	awsConfig aws.Config,
	sender string,
	passwordResetTemplate string,
	passwordResetBaseUrl url.URL,
) *ResetTokenSender {
	return &ResetTokenSender{
		ses:                   ses.NewFromConfig(awsConfig),
		sender:                sender,
		passwordResetTemplate: passwordResetTemplate,
		passwordResetBaseUrl:  passwordResetBaseUrl,
	}
}

func (s *ResetTokenSender) SendResetToken(
	ctx context.Context,
	email c.Email,
	secret account.ResetTokenSecret,
) error {
	resetUrl := s.passwordResetBaseUrl
	query := resetUrl.Query()
	query.Set("token", string(secret))
	query.Set("email", string(email))
	resetUrl.RawQuery = query.Encode()

	templateParamsBytes, err := json.Marshal(
		passwordResetTemplateParams{PasswordResetUrl: resetUrl.String()},
	)
	if err != nil {
		return err
	}
	templateParams := string(templateParamsBytes)

	to := string(email)
	_, err = s.ses.SendTemplatedEmail(
		ctx,
		&ses.SendTemplatedEmailInput{
			Source: &s.sender,
			Destination: &types.Destination{
				CcAddresses: []string{},
				ToAddresses: []string{to},
			},
			Template:     &s.passwordResetTemplate,
			TemplateData: &templateParams,
		},
	)
	return err
}

type passwordResetTemplateParams struct {
	PasswordResetUrl string `json:"passwordResetUrl"`
}
