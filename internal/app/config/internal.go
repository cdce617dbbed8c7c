package config

type InternalConfig struct {
	App            App
	JWT            JWT
	Minio          AppMinio
	RabbitMQ       AppRabbitMQ
	PaymentGateway AppPaymentGateway
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	BaseUrl                    string
	Timezone                   string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	RequestBodyLimitInMegabyte int
	DefaultCurrency            string
	SessionExpiredTimeInHours  int
	PaymentSessionTTLInMinutes int
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}

type AppMinio struct {
	BucketName                          string
	ProfilePictureMaxUploadSizeInMB     int64
	PreSignedUrlObjectExpiryTimeInHours int
}

type AppRabbitMQ struct {
	NotificationQueue string
}

type AppPaymentGateway struct {
	Username                string
	ApiKey                  string
	BaseUrl                 string
	CallbackToken           string
	RequestTimeoutInSeconds int
	MaxRequestsPerSecond    int
}
