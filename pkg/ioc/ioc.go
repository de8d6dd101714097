// Package ioc generates ioctl command numbers from their direction, type,
// number and argument-size fields.
//
// Based on C sources from the Linux kernel:
// https://github.com/torvalds/linux/blob/master/include/uapi/asm-generic/ioctl.h
package ioc

const (
	nrBits   = 8
	typeBits = 8
	sizeBits = 14

	nrShift   = 0
	typeShift = nrShift + nrBits
	sizeShift = typeShift + typeBits
	dirShift  = sizeShift + sizeBits
)

// Ioctl directions.
const (
	None  uintptr = 0x0
	Write uintptr = 0x1
	Read  uintptr = 0x2
)

// Command generates an ioctl command number from the supplied fields.
func Command(dir, typ, nr, size uintptr) uintptr {
	return (dir << dirShift) | (typ << typeShift) |
		(nr << nrShift) | (size << sizeShift)
}

// IO generates an IO command.
func IO(typ, nr uintptr) uintptr {
	return Command(None, typ, nr, 0)
}

// IOR generates an IOR command.
func IOR(typ, nr, size uintptr) uintptr {
	return Command(Read, typ, nr, size)
}

// IOW generates an IOW command.
func IOW(typ, nr, size uintptr) uintptr {
	return Command(Write, typ, nr, size)
}

// IOWR generates an IOWR command.
func IOWR(typ, nr, size uintptr) uintptr {
	return Command(Read|Write, typ, nr, size)
}
