package coin

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/iov-one/goalchain/errors"
	"github.com/iov-one/goalchain/weavetest/assert"
)

func TestCompareCoin(t *testing.T) {
	cases := map[string]struct {
		a       Coin
		b       Coin
		wantRes int
	}{
		"a greater than b": {
			a:       NewCoin(20, "ABC"),
			b:       NewCoin(19, "ABC"),
			wantRes: 1,
		},
		"a smaller than b": {
			a:       NewCoin(0, "FOO"),
			b:       NewCoin(1, "FOO"),
			wantRes: -1,
		},
		"zero value coins": {
			a:       Coin{},
			b:       Coin{},
			wantRes: 0,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			assert.Equal(t, tc.wantRes, tc.a.Compare(tc.b))
		})
	}
}

func TestAddCoin(t *testing.T) {
	cases := map[string]struct {
		a       Coin
		b       Coin
		want    Coin
		wantErr *errors.Error
	}{
		"same currency": {
			a:    NewCoin(500, "GOAL"),
			b:    NewCoin(65, "GOAL"),
			want: NewCoin(565, "GOAL"),
		},
		"zero value without ticker is ignored": {
			a:    Coin{},
			b:    NewCoin(3, "GOAL"),
			want: NewCoin(3, "GOAL"),
		},
		"different currency": {
			a:       NewCoin(1, "GOAL"),
			b:       NewCoin(1, "ETH"),
			wantErr: errors.ErrCurrency,
		},
		"overflow": {
			a:       NewCoin(math.MaxUint64, "GOAL"),
			b:       NewCoin(1, "GOAL"),
			wantErr: errors.ErrOverflow,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := tc.a.Add(tc.b)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr == nil {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestSubtractCoin(t *testing.T) {
	cases := map[string]struct {
		a       Coin
		b       Coin
		want    Coin
		wantErr *errors.Error
	}{
		"enough funds": {
			a:    NewCoin(500, "GOAL"),
			b:    NewCoin(65, "GOAL"),
			want: NewCoin(435, "GOAL"),
		},
		"everything": {
			a:    NewCoin(500, "GOAL"),
			b:    NewCoin(500, "GOAL"),
			want: NewCoin(0, "GOAL"),
		},
		"nothing": {
			a:    NewCoin(500, "GOAL"),
			b:    Coin{},
			want: NewCoin(500, "GOAL"),
		},
		"not enough": {
			a:       NewCoin(499, "GOAL"),
			b:       NewCoin(500, "GOAL"),
			wantErr: errors.ErrInsufficientAmount,
		},
		"different currency": {
			a:       NewCoin(5, "GOAL"),
			b:       NewCoin(1, "ETH"),
			wantErr: errors.ErrCurrency,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := tc.a.Subtract(tc.b)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr == nil {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestMultiplyCoin(t *testing.T) {
	c, err := NewCoin(65, "GOAL").Multiply(3)
	assert.Nil(t, err)
	assert.Equal(t, NewCoin(195, "GOAL"), c)

	c, err = NewCoin(65, "GOAL").Multiply(0)
	assert.Nil(t, err)
	assert.Equal(t, NewCoin(0, "GOAL"), c)

	_, err = NewCoin(math.MaxUint64/2+1, "GOAL").Multiply(2)
	assert.IsErr(t, errors.ErrOverflow, err)
}

func TestValidateCoin(t *testing.T) {
	cases := map[string]struct {
		c       Coin
		wantErr *errors.Error
	}{
		"valid":           {c: NewCoin(5, "GOAL")},
		"zero is valid":   {c: NewCoin(0, "ABC")},
		"missing ticker":  {c: NewCoin(5, ""), wantErr: errors.ErrCurrency},
		"lowercase":       {c: NewCoin(5, "goal"), wantErr: errors.ErrCurrency},
		"ticker too long": {c: NewCoin(5, "GOALS"), wantErr: errors.ErrCurrency},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if err := tc.c.Validate(); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}

func TestCoinString(t *testing.T) {
	assert.Equal(t, "500 GOAL", NewCoin(500, "GOAL").String())
	assert.Equal(t, "0", Coin{}.String())
}

func TestParseHumanFormat(t *testing.T) {
	cases := map[string]struct {
		raw     string
		want    Coin
		wantErr *errors.Error
	}{
		"simple":        {raw: "500 GOAL", want: NewCoin(500, "GOAL")},
		"no space":      {raw: "7ETH", want: NewCoin(7, "ETH")},
		"padded":        {raw: "  1 ABC ", want: NewCoin(1, "ABC")},
		"negative":      {raw: "-1 GOAL", wantErr: errors.ErrInput},
		"fractional":    {raw: "1.5 GOAL", wantErr: errors.ErrInput},
		"no ticker":     {raw: "12", wantErr: errors.ErrInput},
		"too big value": {raw: "18446744073709551616 GOAL", wantErr: errors.ErrOverflow},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := ParseHumanFormat(tc.raw)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr == nil {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestCoinJSON(t *testing.T) {
	cases := map[string]struct {
		raw     string
		want    Coin
		wantErr bool
	}{
		"object":        {raw: `{"ticker": "GOAL", "amount": 500}`, want: NewCoin(500, "GOAL")},
		"human format":  {raw: `"500 GOAL"`, want: NewCoin(500, "GOAL")},
		"invalid human": {raw: `"five GOAL"`, wantErr: true},
		"invalid type":  {raw: `[1, 2]`, wantErr: true},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var c Coin
			err := json.Unmarshal([]byte(tc.raw), &c)
			if tc.wantErr {
				if err == nil {
					t.Fatal("want error")
				}
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.want, c)
		})
	}
}

func TestCoinSerialization(t *testing.T) {
	c := NewCoinp(123456789, "GOAL")
	raw, err := c.Marshal()
	assert.Nil(t, err)

	var got Coin
	assert.Nil(t, got.Unmarshal(raw))
	assert.Equal(t, *c, got)
}
