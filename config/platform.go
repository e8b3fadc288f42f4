package config

import "runtime"

func isWindowsGOOS() bool {
	return runtime.GOOS == "windows"
}
