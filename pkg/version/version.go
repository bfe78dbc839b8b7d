package version

import (
	"fmt"
	"runtime"

	"github.com/rachgmartin/YouTube-Title-Scanner-2.0/pkg/phrases"
)

var (
	Version   = "2.0.0"
	AppName   = "YouTube Title Scanner"
	BuildDate = "unknown"
)

// Info contains versioning information
type Info struct {
	AppName      string `json:"app_name"`
	Version      string `json:"version"`
	RulesVersion string `json:"rules_version"`
	BuildDate    string `json:"build_date"`
	GoVersion    string `json:"go_version"`
	Platform     string `json:"platform"`
}

// GetInfo returns version information
func GetInfo() Info {
	return Info{
		AppName:      AppName,
		Version:      Version,
		RulesVersion: phrases.Version,
		BuildDate:    BuildDate,
		GoVersion:    runtime.Version(),
		Platform:     fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}
