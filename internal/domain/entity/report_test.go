package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskAccessKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "short", in: "LTAI", want: "***"},
		{name: "exactly eight", in: "LTAI1234", want: "***"},
		{name: "nine chars", in: "LTAI12345", want: "LTAI****2345"},
		{name: "typical key", in: "LTAI4GExampleKey", want: "LTAI****eKey"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskAccessKey(tt.in))
		})
	}
}

func TestReportJSONRoundTrip(t *testing.T) {
	name := "web-服务器-01"
	instanceID := "i-aaa"
	size := 40

	original := Report{
		GeneratedAtUTC:           "2026-08-31T10:00:00Z",
		LookbackHours:            24,
		AccountAccessKeyID:       "LTAI****eKey",
		RegionsCount:             1,
		RegionsWithRecentBackups: 1,
		TotalRecentSnapshots:     1,
		Entries: []RegionEntry{{
			Region: "cn-hangzhou",
			Snapshots: []SnapshotRecord{{
				SnapshotID:            "s-1",
				Status:                "accomplished",
				CreatedUTC:            "2026-08-31T09:00:00Z",
				SourceDiskID:          "d-1",
				SourceDiskType:        "data",
				Progress:              "100%",
				Usage:                 "none",
				SourceDiskSizeGB:      &size,
				IsRecent:              true,
				InstanceID:            &instanceID,
				InstanceName:          &name,
				AttachedInstanceIDs:   []string{"i-aaa", "i-bbb"},
				AttachedInstanceNames: []*string{&name, nil},
			}},
			BackupVerification: BackupVerification{
				Result:              VerificationSuccess,
				RecentSnapshotCount: 1,
				CutoffUTC:           "2026-08-30T10:00:00Z",
				LookbackHours:       24,
			},
		}},
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, original, decoded)

	record := decoded.Entries[0].Snapshots[0]
	assert.Nil(t, record.ActualSnapshotSizeGB, "absent size stays null")
	require.Len(t, record.AttachedInstanceNames, 2)
	assert.Nil(t, record.AttachedInstanceNames[1], "unresolved name stays null")
	assert.Equal(t, "web-服务器-01", *record.InstanceName, "multi-byte runes survive the round trip")
}

func TestDegradedMarkerOmitsErrorWhenEmpty(t *testing.T) {
	data, err := json.Marshal(SnapshotRecord{SnapshotID: "s-1"})
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"error"`)

	data, err = json.Marshal(SnapshotRecord{Error: "cn-hangzhou: boom"})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"error":"cn-hangzhou: boom"`)
}
