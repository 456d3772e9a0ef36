package mail

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/smithy-go"
	"github.com/jekabolt/academy-manager/internal/entity"
	gerr "github.com/jekabolt/academy-manager/internal/errors"
)

const charsetUTF8 = "UTF-8"

// sesAPI is the part of the SES client the sender uses.
type sesAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type sesSender struct {
	cli sesAPI
}

func newSESSender(ctx context.Context, region string) (*sesSender, error) {
	opts := []func(*config.LoadOptions) error{}
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("can't load aws config: %w", err)
	}
	return &sesSender{cli: ses.NewFromConfig(cfg)}, nil
}

func (s *sesSender) Send(ctx context.Context, item *entity.EmailQueueItem) (string, error) {
	input := &ses.SendEmailInput{
		Source: aws.String(fmt.Sprintf("%s <%s>", item.FromName, item.FromEmail)),
		Destination: &types.Destination{
			ToAddresses: []string{item.ToEmail},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Charset: aws.String(charsetUTF8),
				Data:    aws.String(item.Subject),
			},
			Body: &types.Body{
				Html: &types.Content{
					Charset: aws.String(charsetUTF8),
					Data:    aws.String(item.Html),
				},
			},
		},
	}
	if item.ReplyTo != "" {
		input.ReplyToAddresses = []string{item.ReplyTo}
	}

	out, err := s.cli.SendEmail(ctx, input)
	if err != nil {
		var ae smithy.APIError
		if errors.As(err, &ae) && ae.ErrorCode() == "Throttling" {
			return "", gerr.ErrMailApiLimitReached
		}
		return "", fmt.Errorf("error sending email: %w", err)
	}
	return aws.ToString(out.MessageId), nil
}
