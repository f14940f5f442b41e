package okx

import "testing"

func TestFormatTimestamp(t *testing.T) {
	var got string
	var want string

	got = FormatTimestamp(1644499170774)
	want = "2022-02-10T13:19:30.774Z"
	if got != want {
		t.Errorf("FormatTimestamp() returned incorrect value | got: %v, want: %v", got, want)
	}

	// Trailing zeros in the fraction must not be dropped
	got = FormatTimestamp(1644499170700)
	want = "2022-02-10T13:19:30.700Z"
	if got != want {
		t.Errorf("FormatTimestamp() dropped trailing zeros | got: %v, want: %v", got, want)
	}

	got = FormatTimestamp(1644499170000)
	want = "2022-02-10T13:19:30.000Z"
	if got != want {
		t.Errorf("FormatTimestamp() dropped whole fraction | got: %v, want: %v", got, want)
	}
}

func TestMillisFromEpochSeconds(t *testing.T) {
	var got int64
	var err error

	t.Run("decimal seconds", func(t *testing.T) {
		got, err = MillisFromEpochSeconds("1644270025.791")
		if err != nil {
			t.Errorf("MillisFromEpochSeconds() returned err | got: %v, want: nil", err)
		}
		if got != 1644270025791 {
			t.Errorf("MillisFromEpochSeconds() returned incorrect value | got: %v, want: %v", got, 1644270025791)
		}
		if FormatTimestamp(got) != "2022-02-07T21:40:25.791Z" {
			t.Errorf("derived timestamp incorrect | got: %v, want: %v", FormatTimestamp(got), "2022-02-07T21:40:25.791Z")
		}
	})

	t.Run("short fraction is padded", func(t *testing.T) {
		got, err = MillisFromEpochSeconds("1644270025.7")
		if err != nil {
			t.Errorf("MillisFromEpochSeconds() returned err | got: %v, want: nil", err)
		}
		if got != 1644270025700 {
			t.Errorf("MillisFromEpochSeconds() returned incorrect value | got: %v, want: %v", got, 1644270025700)
		}
	})

	t.Run("no fraction", func(t *testing.T) {
		got, err = MillisFromEpochSeconds("1644270025")
		if err != nil {
			t.Errorf("MillisFromEpochSeconds() returned err | got: %v, want: nil", err)
		}
		if got != 1644270025000 {
			t.Errorf("MillisFromEpochSeconds() returned incorrect value | got: %v, want: %v", got, 1644270025000)
		}
	})

	t.Run("malformed input", func(t *testing.T) {
		_, err = MillisFromEpochSeconds("not-a-number")
		if err == nil {
			t.Error("MillisFromEpochSeconds() on malformed input | got: nil, want: non-nil")
		}
	})
}

func TestMillisFromString(t *testing.T) {
	got, err := MillisFromString("1644499170774")
	if err != nil {
		t.Errorf("MillisFromString() returned err | got: %v, want: nil", err)
	}
	if got != 1644499170774 {
		t.Errorf("MillisFromString() returned incorrect value | got: %v, want: %v", got, 1644499170774)
	}
	if FormatTimestamp(got) != "2022-02-10T13:19:30.774Z" {
		t.Errorf("derived timestamp incorrect | got: %v, want: %v", FormatTimestamp(got), "2022-02-10T13:19:30.774Z")
	}

	_, err = MillisFromString("167x")
	if err == nil {
		t.Error("MillisFromString() on malformed input | got: nil, want: non-nil")
	}
}
