// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command vault runs and administers the go-pass-vault server.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-pass-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	if err := newRootCmd(buildInfo).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
