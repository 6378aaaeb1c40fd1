package mongo

import (
	"os"
	"time"

	"gopkg.in/mgo.v2"
)

// new mongo conf, credentials come from SHOWDOWN_MONGO_USER / SHOWDOWN_MONGO_PASSWORD
func NewDbConfig(hosts []string, database string) *mgo.DialInfo {
	return &mgo.DialInfo{
		Addrs:     hosts,
		Database:  database,
		Username:  os.Getenv("SHOWDOWN_MONGO_USER"),
		Password:  os.Getenv("SHOWDOWN_MONGO_PASSWORD"),
		Direct:    false,
		Timeout:   time.Second * 5,
		PoolLimit: 16,
	}
}
