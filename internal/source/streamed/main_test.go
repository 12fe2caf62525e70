package streamed

import (
	"os"
	"testing"

	"github.com/bipuldey19/sportsonline/core/logger"
)

func TestMain(m *testing.M) {
	if err := logger.InitLogger(nil); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}
