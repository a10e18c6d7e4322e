package cmd

type Config struct {
	HTTPPort        string
	PushSubscriber  string
	VAPIDPublicKey  string
	VAPIDPrivateKey string
}
