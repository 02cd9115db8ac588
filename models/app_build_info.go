// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo carries build-time metadata injected by linker flags.
//
// The API server reports BuildVersion from GET /api/version when it is set;
// otherwise the configured application version is used.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

func (a AppBuildInfo) BuildVersion() string { return a.buildVersion }

func (a AppBuildInfo) BuildDate() string { return a.buildDate }

func (a AppBuildInfo) BuildCommit() string { return a.buildCommit }

// VersionOr returns the build version, or fallback when none was injected
// or the linker default "N/A" is present.
func (a AppBuildInfo) VersionOr(fallback string) string {
	if a.buildVersion == "" || a.buildVersion == "N/A" {
		return fallback
	}
	return a.buildVersion
}
