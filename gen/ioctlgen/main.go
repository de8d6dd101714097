package main

import (
	"github.com/blang/vfs"
	"github.com/dedupetool/go-fsioctl/pkg/constfile"
	"github.com/dedupetool/go-fsioctl/pkg/ioc"
	"github.com/sirupsen/logrus"
)

// #include <linux/fs.h>
// #include <linux/fiemap.h>
import "C"

// The output lands in whatever directory the generator runs from; the
// go:generate directive in pkg/fsioctl runs it from the package directory.
const (
	outputPath = "zz_ioctl_consts.go"
	outputPkg  = "fsioctl"
	selfPath   = "gen/ioctlgen/main.go"
)

// Dedupe and fiemap ioctl request codes
var (
	// linux/fs.h: #define FIDEDUPERANGE _IOWR(0x94, 54, struct file_dedupe_range)
	FIDEDUPERANGE = ioc.IOWR(0x94, 54, C.sizeof_struct_file_dedupe_range)
	// linux/fs.h: #define FS_IOC_FIEMAP _IOWR('f', 11, struct fiemap)
	FS_IOC_FIEMAP = ioc.IOWR('f', 11, C.sizeof_struct_fiemap)
)

// The constants the dedupe tool imports, in the order it declares them.
var consts = []constfile.Decl{
	{Name: "FIDEDUPERANGE", Type: "uintptr", Value: uint64(FIDEDUPERANGE)},
	{Name: "FILE_DEDUPE_RANGE_DIFFERS", Type: "int32", Value: uint64(C.FILE_DEDUPE_RANGE_DIFFERS)},
	{Name: "FILE_DEDUPE_RANGE_SAME", Type: "int32", Value: uint64(C.FILE_DEDUPE_RANGE_SAME)},
	{Name: "FS_IOC_FIEMAP", Type: "uintptr", Value: uint64(FS_IOC_FIEMAP)},
	{Name: "FIEMAP_FLAG_SYNC", Type: "uint32", Value: uint64(C.FIEMAP_FLAG_SYNC)},
	{Name: "FIEMAP_EXTENT_LAST", Type: "uint32", Value: uint64(C.FIEMAP_EXTENT_LAST)},
	{Name: "FIEMAP_EXTENT_UNKNOWN", Type: "uint32", Value: uint64(C.FIEMAP_EXTENT_UNKNOWN)},
	{Name: "FIEMAP_EXTENT_DELALLOC", Type: "uint32", Value: uint64(C.FIEMAP_EXTENT_DELALLOC)},
	{Name: "FIEMAP_EXTENT_ENCODED", Type: "uint32", Value: uint64(C.FIEMAP_EXTENT_ENCODED)},
	{Name: "FIEMAP_EXTENT_DATA_ENCRYPTED", Type: "uint32", Value: uint64(C.FIEMAP_EXTENT_DATA_ENCRYPTED)},
	{Name: "FIEMAP_EXTENT_NOT_ALIGNED", Type: "uint32", Value: uint64(C.FIEMAP_EXTENT_NOT_ALIGNED)},
	{Name: "FIEMAP_EXTENT_DATA_INLINE", Type: "uint32", Value: uint64(C.FIEMAP_EXTENT_DATA_INLINE)},
	{Name: "FIEMAP_EXTENT_DATA_TAIL", Type: "uint32", Value: uint64(C.FIEMAP_EXTENT_DATA_TAIL)},
	{Name: "FIEMAP_EXTENT_UNWRITTEN", Type: "uint32", Value: uint64(C.FIEMAP_EXTENT_UNWRITTEN)},
	{Name: "FIEMAP_EXTENT_MERGED", Type: "uint32", Value: uint64(C.FIEMAP_EXTENT_MERGED)},
	{Name: "FIEMAP_EXTENT_SHARED", Type: "uint32", Value: uint64(C.FIEMAP_EXTENT_SHARED)},
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	log := logrus.WithField("subsys", "ioctlgen")

	src, err := constfile.Render(selfPath, outputPkg, consts)
	if err != nil {
		log.Fatalf("rendering %s: %v", outputPath, err)
	}
	if err := constfile.WriteFile(vfs.OS(), outputPath, src); err != nil {
		log.Fatalf("writing %s: %v", outputPath, err)
	}
	log.Infof("wrote %d constants to %s", len(consts), outputPath)
}
