package mongo

import (
	"strings"
	"sync"

	"go.uber.org/zap"
	"gopkg.in/mgo.v2"

	"github.com/LeaguesOfHoleHoleShoes/showdown/log"
)

var session *mgo.Session
var mutex sync.Mutex

// 获取数据库连接，整个进程共用一个session
func GetDB(dbConfig *mgo.DialInfo) (*mgo.Session, error) {
	mutex.Lock()
	defer mutex.Unlock()
	if session != nil {
		return session, nil
	}

	log.L.Debug("init mongo db session", zap.Strings("hosts", dbConfig.Addrs))
	var err error
	if session, err = mgo.DialWithInfo(dbConfig); err != nil {
		session = nil
		return nil, err
	}
	session.SetMode(mgo.Strong, true)

	return session, nil
}

// 清空某个数据库下的所有数据，只允许测试库
func ClearAllData(dbConfig *mgo.DialInfo, dbName string) error {
	if !strings.Contains(dbName, "test") {
		log.L.Warn("refuse to clear a non test database", zap.String("db", dbName))
		return nil
	}
	s, err := GetDB(dbConfig)
	if err != nil {
		return err
	}
	tmpDB := s.DB(dbName)
	cName, err := tmpDB.CollectionNames()
	if err != nil {
		return err
	}
	for _, cn := range cName {
		if _, err := tmpDB.C(cn).RemoveAll(nil); err != nil {
			return err
		}
	}
	return nil
}

// 关闭连接
func CloseDb() {
	mutex.Lock()
	defer mutex.Unlock()
	if session != nil {
		session.Close()
		session = nil
	}
}
