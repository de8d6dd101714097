package ioc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

func TestCommandFieldLayout(t *testing.T) {
	assert.Equal(t, uintptr(1)<<30, Command(1, 0, 0, 0))
	assert.Equal(t, uintptr(1)<<8, Command(0, 1, 0, 0))
	assert.Equal(t, uintptr(1), Command(0, 0, 1, 0))
	assert.Equal(t, uintptr(1)<<16, Command(0, 0, 0, 1))
}

func TestKnownCommands(t *testing.T) {
	testcases := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{name: "FICLONE", got: IOW(0x94, 9, 4), want: 0x40049409},
		{name: "FIDEDUPERANGE", got: IOWR(0x94, 54, 24), want: 0xc0189436},
		{name: "FS_IOC_FIEMAP", got: IOWR('f', 11, 32), want: 0xc020660b},
		{name: "TIOCGPTN", got: IOR('T', 0x30, 4), want: 0x80045430},
		{name: "BTRFS_IOC_SYNC", got: IO(0x94, 8), want: 0x9408},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.got)
		})
	}
}

func TestAgreesWithUnix(t *testing.T) {
	assert.Equal(t, uintptr(unix.FICLONE), IOW(0x94, 9, 4))
	assert.Equal(t, uintptr(unix.FIDEDUPERANGE), IOWR(0x94, 54, 24))
	assert.Equal(t, uintptr(unix.TIOCGPTN), IOR('T', 0x30, 4))
}
