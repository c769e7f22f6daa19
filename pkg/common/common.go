package common

import (
	"crypto/sha256"
	"fmt"
	"math/rand"
	"os"

	"github.com/bwmarrin/snowflake"
)

const (
	ENABLED  = "enabled"
	DISABLED = "disabled"
)

var snowflakeNode *snowflake.Node

func init() {
	node, err := snowflake.NewNode(rand.Int63n(1023))
	if err != nil {
		panic(err)
	}
	snowflakeNode = node
}

// UUIDint64 returns a time-ordered unique int64 id.
func UUIDint64() int64 {
	return snowflakeNode.Generate().Int64()
}

// UUID returns the string form of a snowflake id.
func UUID() string {
	return snowflakeNode.Generate().String()
}

// GetSecretSalt reads the password salt from the environment, falling back
// to a fixed development value.
func GetSecretSalt() string {
	salt := os.Getenv("CATALOGD_SECRET_SALT")
	if salt == "" {
		salt = "catalogd-dev-salt"
	}
	return salt
}

// Sha256HashWithSalt hashes value with the given salt.
func Sha256HashWithSalt(value string, salt string) string {
	sum := sha256.Sum256([]byte(value + salt))
	return fmt.Sprintf("%x", sum)
}
