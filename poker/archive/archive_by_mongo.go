package archive

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"

	"github.com/LeaguesOfHoleHoleShoes/showdown/common/mongo"
	"github.com/LeaguesOfHoleHoleShoes/showdown/log"
	"github.com/LeaguesOfHoleHoleShoes/showdown/poker/core"
)

func NewArchiveByMongo(hosts []string, dbName string) (*ArchiveByMongo, error) {
	a := &ArchiveByMongo{
		config: mongo.NewDbConfig(hosts, dbName),
		dbName: dbName,

		reportTN: "report",
	}
	if err := a.migrate(); err != nil {
		return nil, err
	}
	return a, nil
}

// 保存每次比牌的结果
type ArchiveByMongo struct {
	config *mgo.DialInfo
	dbName string

	reportTN string
}

// Save assigns a run id when the report has none and stores it.
func (a *ArchiveByMongo) Save(report *core.Report) error {
	if report.RunID == "" {
		report.RunID = uuid.New().String()
	}
	db, err := a.getDB()
	if err != nil {
		return err
	}
	if err := db.C(a.reportTN).Insert(report); err != nil {
		log.L.Error("save report failed", zap.String("run id", report.RunID), zap.Error(err))
		return err
	}
	return nil
}

func (a *ArchiveByMongo) GetByRunID(runID string) (*core.Report, error) {
	db, err := a.getDB()
	if err != nil {
		return nil, err
	}
	var result core.Report
	if err := db.C(a.reportTN).Find(bson.M{"run_id": runID}).One(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// 查找某个玩家赢过的记录
func (a *ArchiveByMongo) GetWonBy(playerID string) (result []core.Report, err error) {
	db, err := a.getDB()
	if err != nil {
		return nil, err
	}
	err = db.C(a.reportTN).Find(bson.M{"winners": playerID}).Sort("at").All(&result)
	return
}

func (a *ArchiveByMongo) getDB() (*mgo.Database, error) {
	s, err := mongo.GetDB(a.config)
	if err != nil {
		return nil, err
	}
	return s.DB(a.dbName), nil
}

func (a *ArchiveByMongo) migrate() error {
	db, err := a.getDB()
	if err != nil {
		return err
	}
	if err := db.C(a.reportTN).EnsureIndex(mgo.Index{Key: []string{"run_id"}, Unique: true}); err != nil {
		return err
	}
	return db.C(a.reportTN).EnsureIndex(mgo.Index{Key: []string{"winners"}})
}

func (a *ArchiveByMongo) ClearTestData() error {
	return mongo.ClearAllData(a.config, a.dbName)
}
