// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const notAvailable = "N/A"

// AppBuildInfo carries build-time metadata injected with -ldflags.
// Empty values are reported as "N/A".
type AppBuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// NewAppBuildInfo constructs [AppBuildInfo], replacing missing values with "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orNotAvailable(buildVersion),
		Date:    orNotAvailable(buildDate),
		Commit:  orNotAvailable(buildCommit),
	}
}

// String renders the build info in the multi-line form printed at startup.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", a.Version, a.Date, a.Commit)
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
