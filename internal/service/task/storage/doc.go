// Package storage 작업 상태 저장소(status-<id>)와 취소 채널(cancel-<id>)의 백엔드 구현을 제공합니다.
//
// 두 가지 백엔드를 지원합니다.
//
//   - RedisStore: 여러 서버 인스턴스가 동일한 Redis를 공유하여 작업을 함께 조정합니다.
//   - MemoryStore: 프로세스 내부에서만 동작하며 테스트와 단일 인스턴스 로컬 실행에 사용됩니다.
//
// 어떤 백엔드든 단일 키에 대한 원자적 연산만 사용하며, 상태 쓰기는 항상 무조건 덮어쓰기입니다.
package storage
