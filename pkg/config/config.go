package config

import "os"

type Config struct {
	Port           string
	Env            string
	MongoURI       string
	JWTSecret      string
	UploadStrategy string
	UploadDir      string
	S3Endpoint     string
	S3Region       string
	S3Bucket       string
	S3AccessKey    string
	S3SecretKey    string
}

func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "4444"),
		Env:            getEnv("ENV", "development"),
		MongoURI:       getEnv("MONGO_URI", ""),
		JWTSecret:      getEnv("JWT_SECRET", "supersecretjwtkey"),
		UploadStrategy: getEnv("UPLOAD_STRATEGY", "local"),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		S3Endpoint:     getEnv("S3_ENDPOINT", "s3.amazonaws.com"),
		S3Region:       getEnv("S3_REGION", ""),
		S3Bucket:       getEnv("S3_BUCKET", ""),
		S3AccessKey:    getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:    getEnv("S3_SECRET_KEY", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
