package util

import (
	"crypto/rand"
	"encoding/binary"
	"io/ioutil"
	"reflect"

	"github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/LeaguesOfHoleHoleShoes/showdown/log"
)

// 解析json字符串
func ParseJson(data string, result interface{}) error {
	var json = jsoniter.ConfigCompatibleWithStandardLibrary
	return json.Unmarshal([]byte(data), result)
}

// json转字符串
func StringifyJson(data interface{}) string {
	var json = jsoniter.ConfigCompatibleWithStandardLibrary
	b, _ := json.Marshal(&data)
	return string(b)
}

// 解析json bytes
func ParseJsonFromBytes(data []byte, result interface{}) error {
	var json = jsoniter.ConfigCompatibleWithStandardLibrary
	return json.Unmarshal(data, result)
}

func StringifyJsonToBytesWithErr(data interface{}) ([]byte, error) {
	var json = jsoniter.ConfigCompatibleWithStandardLibrary
	b, err := json.Marshal(&data)
	return b, err
}

// 从文件中读取json数据
func ReadJsonFromFile(path string, result interface{}) error {
	bytes, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}
	return ParseJsonFromBytes(bytes, result)
}

// struct slice copy to interface slice
func InterfaceSliceCopy(to, from interface{}) {
	toV := reflect.ValueOf(to)
	fromV := reflect.ValueOf(from)
	toLen := toV.Len()
	for i := 0; i < toLen; i++ {
		toV.Index(i).Set(fromV.Index(i))
	}
	return
}

// 根据限定随机生成一个数字
func RandANum(limit int) int {
	rb := make([]byte, 4)
	if n, err := rand.Read(rb); n != 4 || err != nil {
		log.L.Error("read rand bytes failed", zap.Int("read num", n), zap.Error(err))
		return 0
	}
	return int(binary.BigEndian.Uint32(rb) % uint32(limit))
}
