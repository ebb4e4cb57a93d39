package combat

import "testing"

type fixedRoll float64

func (f fixedRoll) Uniform() float64 { return float64(f) }

func TestResolve_Order(t *testing.T) {
	table := Table{Miss: 10, Dodge: 10, Parry: 10, Glance: 10, Block: 10, Crit: 10}
	tests := []struct {
		roll float64
		want Outcome
	}{
		{0.00, Miss},
		{0.099, Miss},
		{0.10, Dodge},
		{0.25, Parry},
		{0.35, Glance},
		{0.45, Block},
		{0.55, Crit},
		{0.60, Hit},
		{0.99, Hit},
	}
	for _, tt := range tests {
		if got := Resolve(fixedRoll(tt.roll), table); got != tt.want {
			t.Errorf("Resolve(%v) = %v, want %v", tt.roll, got, tt.want)
		}
	}
}

func TestResolve_NegativeChancesIgnored(t *testing.T) {
	table := Table{Miss: -20, Dodge: 5}
	if got := Resolve(fixedRoll(0.0), table); got != Dodge {
		t.Fatalf("negative miss should be floored to 0, got %v", got)
	}
	if got := Resolve(fixedRoll(0.06), table); got != Hit {
		t.Fatalf("roll past dodge should hit, got %v", got)
	}
}

func TestWhiteTable(t *testing.T) {
	tests := []struct {
		name   string
		hit    float64
		crit   float64
		target Target
		want   Table
	}{
		{
			name:   "boss behind",
			hit:    3,
			crit:   30,
			target: Target{Level: 63},
			want:   Table{Miss: 5.6, Dodge: 6.5, Glance: 40, Crit: 25.2},
		},
		{
			name:   "boss in front with block",
			hit:    10,
			crit:   2,
			target: Target{Level: 63, Front: true, CanBlock: true},
			want:   Table{Miss: 0, Dodge: 6.5, Parry: 14, Glance: 40, Block: 5, Crit: 0},
		},
		{
			name:   "trash in front",
			hit:    0,
			crit:   20,
			target: Target{Level: 60, Front: true},
			want:   Table{Miss: 5, Dodge: 5, Parry: 5, Glance: 10, Crit: 20},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WhiteTable(tt.hit, tt.crit, tt.target)
			if !closeTable(got, tt.want) {
				t.Errorf("WhiteTable() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestYellowTable(t *testing.T) {
	got := YellowTable(3, 3, Target{Level: 63})
	want := Table{Miss: 3, Dodge: 6.5}
	if !closeTable(got, want) {
		t.Fatalf("YellowTable() = %+v, want %+v", got, want)
	}
	if got.Glance != 0 || got.Crit != 0 {
		t.Fatalf("yellow table must not carry glance or crit: %+v", got)
	}
	if capped := YellowTable(100, 3, Target{Level: 60}); capped.Miss != 0 {
		t.Fatalf("hit capped miss = %v, want 0", capped.Miss)
	}
}

func TestYellowCritChance(t *testing.T) {
	if got := YellowCritChance(30, 0, Target{Level: 63}); !approx(got, 25.2) {
		t.Errorf("boss crit = %v, want 25.2", got)
	}
	if got := YellowCritChance(30, 15, Target{Level: 60}); got != 45 {
		t.Errorf("trash crit with bonus = %v, want 45", got)
	}
}

func TestOutcomeString(t *testing.T) {
	if Crit.String() != "CRIT" || Hit.String() != "HIT" || Outcome(99).String() != "UNKNOWN" {
		t.Fatal("unexpected outcome names")
	}
	for _, o := range []Outcome{Miss, Dodge, Parry} {
		if !o.Avoided() {
			t.Errorf("%v should be avoided", o)
		}
	}
	for _, o := range []Outcome{Hit, Glance, Block, Crit} {
		if o.Avoided() {
			t.Errorf("%v should not be avoided", o)
		}
	}
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}

func closeTable(a, b Table) bool {
	return approx(a.Miss, b.Miss) && approx(a.Dodge, b.Dodge) && approx(a.Parry, b.Parry) &&
		approx(a.Glance, b.Glance) && approx(a.Block, b.Block) && approx(a.Crit, b.Crit)
}
