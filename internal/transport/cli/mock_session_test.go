package cli

import (
	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/usecase"
)

type mockGameSession struct {
	mock.Mock
}

func (that *mockGameSession) Play(cell int) error {
	args := that.Called(cell)
	return args.Error(0)
}

func (that *mockGameSession) JumpTo(move int) error {
	args := that.Called(move)
	return args.Error(0)
}

func (that *mockGameSession) Restart() {
	that.Called()
}

func (that *mockGameSession) CurrentMove() int {
	args := that.Called()
	return args.Int(0)
}

func (that *mockGameSession) History() tictactoe.History {
	args := that.Called()
	return args.Get(0).(tictactoe.History) //nolint: forcetypeassert // test mock
}

func (that *mockGameSession) Snapshot() usecase.Snapshot {
	args := that.Called()
	return args.Get(0).(usecase.Snapshot) //nolint: forcetypeassert // test mock
}

type mockHelpRenderer struct {
	mock.Mock
}

func (that *mockHelpRenderer) Render(markdown string) (string, error) {
	args := that.Called(markdown)
	return args.String(0), args.Error(1)
}
