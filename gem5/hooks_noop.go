//go:build !gem5

package gem5

type hooks struct{}

func (hooks) WindowOpen()  {}
func (hooks) WindowClose() {}
