package main

import (
	"context"

	"storefront-api/internal/config"
	"storefront-api/internal/handlers"
	"storefront-api/internal/metrics"
	"storefront-api/pkg/lambda"
	"storefront-api/pkg/server"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"
)

var router *lambda.Router

func init() {
	cfg, err := config.LoadForService(handlers.NotificationsServiceName)
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}
	config.ConfigureLogging(cfg)

	container, err := server.NewContainer(cfg)
	if err != nil {
		panic("Failed to initialize container: " + err.Error())
	}

	router = handlers.NewNotificationsRouter(container.NotificationService).WithObserver(metrics.RequestObserver{})

	logrus.WithFields(logrus.Fields{
		"service":  router.Service(),
		"mode":     config.GetDeploymentMode(),
		"products": container.Catalog.Len(),
	}).Info("Function initialized")
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	// Convert API Gateway event to generic request and route it
	resp := router.Handle(ctx, lambda.FromAPIGateway(event))
	return lambda.ToAPIGateway(resp), nil
}

func main() {
	awslambda.Start(handler)
}
