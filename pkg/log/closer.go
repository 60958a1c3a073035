package log

import (
	"errors"
	"io"
	"sync/atomic"
)

// closer Setup()이 생성한 로그 파일들을 일괄 해제합니다.
// Hook을 먼저 닫아 닫힌 파일에 쓰기가 발생하지 않도록 하며, 중복 호출은 무시됩니다.
type closer struct {
	closers []io.Closer

	hook *hook

	closed atomic.Bool
}

func (c *closer) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}

	if c.hook != nil {
		c.hook.Close()
	}

	var errs error
	for _, cl := range c.closers {
		if cl == nil {
			continue
		}

		if s, ok := cl.(interface{ Sync() error }); ok {
			_ = s.Sync()
		}

		if err := cl.Close(); err != nil {
			errs = errors.Join(errs, err)
		}
	}

	return errs
}
