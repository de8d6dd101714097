/*
This file is part of go-fsioctl.

Go-fsioctl is free software: you can redistribute it and/or modify it under the terms of the
GNU Lesser General Public License as published by the Free Software Foundation, either
version 3 of the License, or (at your option) any later version.

Go-fsioctl is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
See the GNU Lesser General Public License for more details.

You should have received a copy of the GNU Lesser General Public License along with go-fsioctl.
If not, see <https://www.gnu.org/licenses/>.
*/

// Package fsioctl carries the fiemap and range-deduplication ioctl request
// codes and flag values a dedupe tool needs to talk to the kernel. The
// constants live in zz_ioctl_consts.go, captured from the host's kernel
// headers; run go generate on this package to refresh them.
package fsioctl

//go:generate go run github.com/dedupetool/go-fsioctl/gen/ioctlgen
