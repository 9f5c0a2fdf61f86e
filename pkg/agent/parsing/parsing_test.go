package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const flexlmFixture = `lmutil - Copyright (c) 1989-2021 Flexera. All Rights Reserved.
Flexible License Manager status on Tue 08/19/2025 10:12

License server status: 27000@lic01
    License file(s) on lic01: /opt/flexlm/licenses/abaqus.lic:

lic01: license server UP (MASTER) v11.18

Vendor daemon status (on lic01):

  ABAQUSLM: UP v11.18
Feature usage info:

Users of abaqus:  (Total of 50 licenses issued;  Total of 7 licenses in use)

  "abaqus" v62.2, vendor: ABAQUSLM, expiry: 31-dec-2025

    alice node001 /dev/tty (v62.2) (lic01/27000 101), start Tue 8/19 9:01, 7 licenses
`

func TestParseFlexLM(t *testing.T) {
	t.Run("extracts the usage block", func(t *testing.T) {
		counts, err := ParseFlexLM([]byte(flexlmFixture), "abaqus")
		require.NoError(t, err)
		assert.Equal(t, Counts{Used: 7, Total: 50}, counts)
	})

	t.Run("usage line named after the product still counts", func(t *testing.T) {
		counts, err := ParseFlexLM([]byte(flexlmFixture), "standard")
		require.NoError(t, err)
		assert.Equal(t, Counts{Used: 7, Total: 50}, counts)
	})

	t.Run("singular license wording", func(t *testing.T) {
		output := "Users of explicit:  (Total of 10 licenses issued;  Total of 1 license in use)\n"
		counts, err := ParseFlexLM([]byte(output), "explicit")
		require.NoError(t, err)
		assert.Equal(t, Counts{Used: 1, Total: 10}, counts)
	})

	t.Run("no usage line in output", func(t *testing.T) {
		_, err := ParseFlexLM([]byte("lmutil - lmstat failed: Cannot connect to license server system.\n"), "solver")
		require.Error(t, err)
	})

	t.Run("empty output", func(t *testing.T) {
		_, err := ParseFlexLM(nil, "abaqus")
		require.Error(t, err)
	})
}

const lsdynaFixture = `                     Running Programs

    LICENSE INFORMATION

PROGRAM          EXPIRATION CPUS  USED   FREE | QUEUE
---------------- ----------      ----- ------ | -----
MPPDYNA          12/30/2025          -     60    440 |     0
MPPDYNA_971      12/30/2025          -      0    500 |     0
LS-OPT           12/30/2025          -      3     17 |     0
                 LICENSE GROUP     63    957   1020 |     0
`

func TestParseLSDyna(t *testing.T) {
	features := ParseLSDyna([]byte(lsdynaFixture))

	require.Len(t, features, 3)
	assert.Equal(t, Counts{Used: 60, Total: 500}, features["mppdyna"])
	assert.Equal(t, Counts{Used: 0, Total: 500}, features["mppdyna_971"])
	assert.Equal(t, Counts{Used: 3, Total: 20}, features["ls-opt"])

	t.Run("empty output", func(t *testing.T) {
		assert.Empty(t, ParseLSDyna(nil))
	})
}

const rlmFixture = `Setting license file path to 5053@lic02
rlmutil v14.2
Copyright (C) 2006-2021, Reprise Software, Inc. All rights reserved.

	rlm status on lic02 (port 5053), up 21d 04:22:31
	rlm software version v14.2

	converge license pool status on lic02 (port 5053)

	converge_super v3.0
	    count: 1000, # reservations: 0, inuse: 93, exp: 31-jan-2026
	    obsolete: 0, min_remove: 120, total checkouts: 23077

	converge_gui v3.0
	    count: 45, # reservations: 0, inuse: 0, exp: 31-jan-2026
`

func TestParseRLM(t *testing.T) {
	features := ParseRLM([]byte(rlmFixture))

	require.Len(t, features, 2)
	assert.Equal(t, Counts{Used: 93, Total: 1000}, features["converge_super"])
	assert.Equal(t, Counts{Used: 0, Total: 45}, features["converge_gui"])

	t.Run("empty output", func(t *testing.T) {
		assert.Empty(t, ParseRLM(nil))
	})
}

const lmxFixture = `LM-X End-user Utility v3.32
Copyright (C) 2002-2021 X-Formation. All rights reserved.

++++++++++++++++++++++++++++++++++++++++
LM-X license server on 6200@lic03:

Server version: v5.1 Uptime: 4 day(s) 11 hour(s)

Feature: HyperWorks Version: 21.0 Vendor: ALTAIR
Start date: 2025-01-01 Expire date: 2026-01-01
Key type: EXCLUSIVE License sharing: CUSTOM VIRTUAL

15 of 25 license(s) used

Feature: GlobalZoneEU Version: 21.0 Vendor: ALTAIR
Start date: 2025-01-01 Expire date: 2026-01-01
Key type: EXCLUSIVE License sharing: CUSTOM VIRTUAL

0 of 1000 license(s) used
`

func TestParseLMX(t *testing.T) {
	features := ParseLMX([]byte(lmxFixture))

	require.Len(t, features, 2)
	assert.Equal(t, Counts{Used: 15, Total: 25}, features["hyperworks"])
	assert.Equal(t, Counts{Used: 0, Total: 1000}, features["globalzoneeu"])

	t.Run("empty output", func(t *testing.T) {
		assert.Empty(t, ParseLMX(nil))
	})
}

const olicenseFixture = `olixtool 4.8.0: OLicense XML-RPC Client
Server: lic04:31212

  Application:     ftire_adams
  Licenser:        cosin scientific software
  Licensee:        HPC Center
  ModuleType:      FloatingLicense
  FloatCount:      4
  FloatsLockedBy:  alice@node001 #1
  FloatsLockedBy:  bob@node002 #1

  Application:     ftire_simpack
  Licenser:        cosin scientific software
  Licensee:        HPC Center
  ModuleType:      FloatingLicense
  FloatCount:      2
`

func TestParseOLicense(t *testing.T) {
	features := ParseOLicense([]byte(olicenseFixture))

	require.Len(t, features, 2)
	assert.Equal(t, Counts{Used: 2, Total: 4}, features["ftire_adams"])
	assert.Equal(t, Counts{Used: 0, Total: 2}, features["ftire_simpack"])

	t.Run("empty output", func(t *testing.T) {
		assert.Empty(t, ParseOLicense(nil))
	})
}
