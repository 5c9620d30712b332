// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo carries build-time metadata of the running binary.
//
// Values are typically injected by linker flags during CI/CD and served by
// the version endpoint for diagnostics and release traceability.
type AppBuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"buildDate,omitempty"`
	Commit  string `json:"buildCommit,omitempty"`
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build
// metadata. The "N/A" placeholder of unset linker flags is dropped.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orEmpty(buildVersion),
		Date:    orEmpty(buildDate),
		Commit:  orEmpty(buildCommit),
	}
}

func orEmpty(s string) string {
	if s == "N/A" {
		return ""
	}
	return s
}
