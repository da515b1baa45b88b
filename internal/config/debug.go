package config

import "os"

func IsDebug() bool {
	return os.Getenv("FOX_DEBUG") == "1"
}
