package awsclient

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	cetypes "github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/pkg/errors"
	awsdomain "github.com/vfg2006/cloud-cost-api/infrastructure/integrator/aws/domain"
	"github.com/vfg2006/cloud-cost-api/internal/config"
	"github.com/vfg2006/cloud-cost-api/internal/domain"
	"github.com/vfg2006/cloud-cost-api/pkg/utils"
)

const costMetric = "UnblendedCost"

//go:generate mockgen -source=client.go -destination=mocks/client.go -package=mocks
type Client interface {
	DescribeInstances(ctx context.Context, creds domain.Credentials) ([]awsdomain.Instance, error)
	DescribeDBInstances(ctx context.Context, creds domain.Credentials) ([]awsdomain.DBInstance, error)
	ListBuckets(ctx context.Context, creds domain.Credentials) ([]awsdomain.Bucket, error)
	GetDailyCosts(ctx context.Context, creds domain.Credentials, period domain.CostPeriod) ([]awsdomain.DailyCost, error)
}

// SDKClient builds short-lived SDK clients from the stored static credentials
// of each connection.
type SDKClient struct {
	cfg config.AWS
}

func NewClient(cfg config.AWS) Client {
	return &SDKClient{cfg: cfg}
}

func (c *SDKClient) awsConfig(creds domain.Credentials, region string) aws.Config {
	if region == "" {
		region = creds.Region
	}
	if region == "" {
		region = c.cfg.DefaultRegion
	}

	return aws.Config{
		Region:      region,
		Credentials: credentials.NewStaticCredentialsProvider(creds.AccessKeyID, creds.SecretAccessKey, ""),
	}
}

func (c *SDKClient) DescribeInstances(ctx context.Context, creds domain.Credentials) ([]awsdomain.Instance, error) {
	client := ec2.NewFromConfig(c.awsConfig(creds, ""))
	paginator := ec2.NewDescribeInstancesPaginator(client, &ec2.DescribeInstancesInput{})

	instances := make([]awsdomain.Instance, 0)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, errors.Wrap(toHTTPError("ec2", err), "aws: describe instances")
		}

		for _, reservation := range page.Reservations {
			for _, instance := range reservation.Instances {
				state := ""
				if instance.State != nil {
					state = string(instance.State.Name)
				}
				instances = append(instances, awsdomain.Instance{
					ID:    aws.ToString(instance.InstanceId),
					State: state,
				})
			}
		}
	}

	return instances, nil
}

func (c *SDKClient) DescribeDBInstances(ctx context.Context, creds domain.Credentials) ([]awsdomain.DBInstance, error) {
	client := rds.NewFromConfig(c.awsConfig(creds, ""))
	paginator := rds.NewDescribeDBInstancesPaginator(client, &rds.DescribeDBInstancesInput{})

	databases := make([]awsdomain.DBInstance, 0)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, errors.Wrap(toHTTPError("rds", err), "aws: describe db instances")
		}

		for _, instance := range page.DBInstances {
			databases = append(databases, awsdomain.DBInstance{
				ID:     aws.ToString(instance.DBInstanceIdentifier),
				Engine: aws.ToString(instance.Engine),
				Status: aws.ToString(instance.DBInstanceStatus),
			})
		}
	}

	return databases, nil
}

func (c *SDKClient) ListBuckets(ctx context.Context, creds domain.Credentials) ([]awsdomain.Bucket, error) {
	client := s3.NewFromConfig(c.awsConfig(creds, ""))

	output, err := client.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, errors.Wrap(toHTTPError("s3", err), "aws: list buckets")
	}

	buckets := make([]awsdomain.Bucket, 0, len(output.Buckets))
	for _, bucket := range output.Buckets {
		buckets = append(buckets, awsdomain.Bucket{Name: aws.ToString(bucket.Name)})
	}

	return buckets, nil
}

// GetDailyCosts queries Cost Explorer, whose end date is exclusive, for the
// inclusive period.
func (c *SDKClient) GetDailyCosts(ctx context.Context, creds domain.Credentials, period domain.CostPeriod) ([]awsdomain.DailyCost, error) {
	client := costexplorer.NewFromConfig(c.awsConfig(creds, c.cfg.CostExplorerRegion))

	input := &costexplorer.GetCostAndUsageInput{
		TimePeriod: &cetypes.DateInterval{
			Start: aws.String(period.Start.Format(time.DateOnly)),
			End:   aws.String(period.End.AddDate(0, 0, 1).Format(time.DateOnly)),
		},
		Granularity: cetypes.GranularityDaily,
		Metrics:     []string{costMetric},
	}

	costs := make([]awsdomain.DailyCost, 0)
	for {
		output, err := client.GetCostAndUsage(ctx, input)
		if err != nil {
			return nil, errors.Wrap(toHTTPError("costexplorer", err), "aws: get cost and usage")
		}

		for _, result := range output.ResultsByTime {
			cost, err := dailyCost(result)
			if err != nil {
				return nil, err
			}
			costs = append(costs, cost)
		}

		if aws.ToString(output.NextPageToken) == "" {
			break
		}
		input.NextPageToken = output.NextPageToken
	}

	return costs, nil
}

func dailyCost(result cetypes.ResultByTime) (awsdomain.DailyCost, error) {
	cost := awsdomain.DailyCost{Unit: "USD"}
	if result.TimePeriod != nil {
		cost.Date = aws.ToString(result.TimePeriod.Start)
	}

	metric, ok := result.Total[costMetric]
	if !ok {
		return cost, nil
	}

	if unit := aws.ToString(metric.Unit); unit != "" {
		cost.Unit = unit
	}

	if amount := aws.ToString(metric.Amount); amount != "" {
		value, err := strconv.ParseFloat(amount, 64)
		if err != nil {
			return cost, errors.Wrapf(err, "aws: invalid cost amount %q", amount)
		}
		cost.Amount = value
	}

	return cost, nil
}

// toHTTPError converts an SDK response error into *utils.HTTPError so callers
// classify AWS rejections the same way as the REST integrations.
func toHTTPError(service string, err error) error {
	var responseErr *awshttp.ResponseError
	if !errors.As(err, &responseErr) {
		return err
	}

	statusCode := responseErr.HTTPStatusCode()
	body := responseErr.Error()

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		body = fmt.Sprintf("%s: %s", apiErr.ErrorCode(), apiErr.ErrorMessage())
	}

	return &utils.HTTPError{
		Service:    "aws " + service,
		StatusCode: statusCode,
		Status:     fmt.Sprintf("%d %s", statusCode, http.StatusText(statusCode)),
		Body:       body,
	}
}
