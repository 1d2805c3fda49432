package handler

import (
	"testing"
	"time"

	"event_manager/model"
	"event_manager/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDateRange(t *testing.T) {
	stored := model.Event{
		StartDate: time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC),
	}

	cases := []struct {
		name      string
		start     *string
		end       *string
		wantOk    bool
		wantStart string
		wantEnd   string
	}{
		{"no dates keeps stored range", nil, nil, true, "2026-06-10", "2026-06-12"},
		{"both dates replace the range", utils.Ptr("2026-07-01"), utils.Ptr("2026-07-03"), true, "2026-07-01", "2026-07-03"},
		{"end alone still after stored start", nil, utils.Ptr("2026-06-20"), true, "2026-06-10", "2026-06-20"},
		{"start alone still before stored end", utils.Ptr("2026-06-11"), nil, true, "2026-06-11", "2026-06-12"},
		{"end alone before stored start", nil, utils.Ptr("2026-06-05"), false, "", ""},
		{"end alone equal to stored start", nil, utils.Ptr("2026-06-10"), false, "", ""},
		{"start alone past stored end", utils.Ptr("2026-06-15"), nil, false, "", ""},
		{"both dates inverted", utils.Ptr("2026-07-03"), utils.Ptr("2026-07-01"), false, "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end, ok := resolveDateRange(stored, tc.start, tc.end)
			require.Equal(t, tc.wantOk, ok)
			if tc.wantOk {
				assert.Equal(t, tc.wantStart, start.Format("2006-01-02"))
				assert.Equal(t, tc.wantEnd, end.Format("2006-01-02"))
			}
		})
	}
}
