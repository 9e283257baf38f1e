package globals

import (
	"context"
	"os"
)

var JwtSecret = []byte(jwtSecretFromEnv())

func jwtSecretFromEnv() string {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return s
	}
	return "dev_only_secret" // override via JWT_SECRET in production
}

// Context keys
type ContextKey string

const UserIDKey ContextKey = "userId"

var Ctx = context.Background()
