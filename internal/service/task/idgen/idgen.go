// Package idgen 작업 ID 생성기를 제공합니다.
package idgen

import (
	"encoding/hex"

	"github.com/darkkaiser/task-server/internal/service/contract"
	"github.com/google/uuid"
)

// Length 생성되는 작업 ID의 길이 (128비트를 16진수로 표현)
const Length = 32

// Generator 임의의 128비트 값(UUID v4)으로 작업 ID를 생성합니다.
//
// ID는 하이픈 없는 32자리 소문자 16진수 문자열입니다. (예: "0f8fad5bd9cb469fa16570867728950e")
// 시간 순서를 반영하지 않으며, 다른 서버 인스턴스와 조율하지 않아도 충돌 확률은 무시할 수 있는 수준입니다.
type Generator struct{}

// New 새로운 작업 ID를 생성합니다.
func (Generator) New() contract.TaskID {
	u := uuid.New()

	var buf [Length]byte
	hex.Encode(buf[:], u[:])

	return contract.TaskID(buf[:])
}

var _ contract.TaskIDGenerator = Generator{}
