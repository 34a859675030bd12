// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// NotAvailable stands in for build metadata the linker did not set.
const NotAvailable = "N/A"

// AppBuildInfo is the version, date and commit stamped into the client and
// preview binaries with -ldflags.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

// WithDefaults returns a copy where blank fields read [NotAvailable].
func (a AppBuildInfo) WithDefaults() AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNotAvailable(a.buildVersion),
		buildDate:    orNotAvailable(a.buildDate),
		buildCommit:  orNotAvailable(a.buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// String is the one-line form used in startup logs.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("version=%s date=%s commit=%s", a.buildVersion, a.buildDate, a.buildCommit)
}

func orNotAvailable(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return NotAvailable
	}
	return v
}
