package card

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"sync"
	"testing"
)

func baseRecord() ContactRecord {
	return ContactRecord{
		First:   "Ada",
		Last:    "Lovelace",
		Phone:   "+919876543210",
		Email:   "ada@example.com",
		ThemeID: "ocean",
	}
}

func renderImage(t *testing.T, rec ContactRecord) image.Image {
	t.Helper()
	data, err := Render(rec)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Fatal("render returned empty bytes")
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}
	return img
}

func rgba8(c color.Color) (uint8, uint8, uint8) {
	r, g, b, _ := c.RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)
}

func TestRenderDimensions(t *testing.T) {
	img := renderImage(t, baseRecord())
	if b := img.Bounds(); b.Dx() != cardW || b.Dy() != cardH {
		t.Errorf("got %dx%d, want %dx%d", b.Dx(), b.Dy(), cardW, cardH)
	}
}

func TestRenderOceanScenario(t *testing.T) {
	// Minimal record: no logo, no title/org. The gradient stops must show
	// through in undecorated regions, the contact block sits at its fixed
	// minimum offset, and the bottom strip is solid accent.
	theme := ResolveTheme("ocean")
	img := renderImage(t, baseRecord())

	checkGradient := func(x, y int) {
		f := float64(y) / cardH
		wantR := lerpChannel(theme.Top.R, theme.Bottom.R, f)
		wantG := lerpChannel(theme.Top.G, theme.Bottom.G, f)
		wantB := lerpChannel(theme.Top.B, theme.Bottom.B, f)
		r, g, b := rgba8(img.At(x, y))
		if absDiff(r, wantR) > 1 || absDiff(g, wantG) > 1 || absDiff(b, wantB) > 1 {
			t.Errorf("(%d,%d) = (%d,%d,%d), want gradient (%d,%d,%d)", x, y, r, g, b, wantR, wantG, wantB)
		}
	}
	checkGradient(300, 2)   // near the top stop, outside every overlay circle
	checkGradient(300, 600) // near the bottom stop
	checkGradient(160, 190) // corner-logo region: must be bare without a logo

	// Phone icon anchored at the fixed minimum offset.
	found := false
	for y := contactMinY - 4; y < contactMinY+iconSize+4 && !found; y++ {
		for x := leftMargin - 4; x < leftMargin+iconSize+4; x++ {
			r, g, b := rgba8(img.At(x, y))
			if absDiff(r, theme.Accent.R) < 30 && absDiff(g, theme.Accent.G) < 30 && absDiff(b, theme.Accent.B) < 30 {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("no accent icon pixels near the fixed contact-block offset")
	}

	// Bottom accent strip.
	r, g, b := rgba8(img.At(600, cardH-3))
	if r != theme.Accent.R || g != theme.Accent.G || b != theme.Accent.B {
		t.Errorf("bottom strip = (%d,%d,%d), want accent %v", r, g, b, theme.Accent)
	}
}

func TestRenderUnknownThemeMatchesDefault(t *testing.T) {
	rec := baseRecord()
	rec.ThemeID = "unknown-id"
	a, err := Render(rec)
	if err != nil {
		t.Fatal(err)
	}
	rec.ThemeID = DefaultThemeID
	b, err := Render(rec)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("unknown theme id must render identically to the default theme")
	}
}

func TestRenderWithLogo(t *testing.T) {
	logo := solidPNG(t, 64, 64, color.NRGBA{200, 30, 30, 255})

	rec := baseRecord()
	plain, err := Render(rec)
	if err != nil {
		t.Fatal(err)
	}
	rec.Logo = logo
	img := renderImage(t, rec)

	// Corner badge center carries the logo color.
	if r, _, _ := rgba8(img.At(leftMargin+cardLogoSize/2, 60+cardLogoSize/2)); r < 150 {
		t.Errorf("badge center %v, want the red logo", img.At(leftMargin+cardLogoSize/2, 60+cardLogoSize/2))
	}

	withLogo, err := Render(rec)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(plain, withLogo) {
		t.Error("logo must change the rendered card")
	}
}

func TestRenderCorruptLogoDegradesToNone(t *testing.T) {
	rec := baseRecord()
	plain, err := Render(rec)
	if err != nil {
		t.Fatal(err)
	}
	rec.Logo = []byte("corrupt image bytes")
	degraded, err := Render(rec)
	if err != nil {
		t.Fatalf("corrupt logo must not fail the render: %v", err)
	}
	if !bytes.Equal(plain, degraded) {
		t.Error("corrupt logo must render exactly like no logo")
	}
}

func TestRenderDoesNotConsumeLogoBytes(t *testing.T) {
	logo := solidPNG(t, 48, 48, color.NRGBA{20, 90, 200, 255})
	before := append([]byte(nil), logo...)

	rec := baseRecord()
	rec.Logo = logo
	a, err := Render(rec)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Render(rec)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("repeated renders of the same record must be identical")
	}
	if !bytes.Equal(logo, before) {
		t.Error("render must not mutate the caller's logo bytes")
	}
}

func TestRenderLongNameAtLimit(t *testing.T) {
	rec := baseRecord()
	rec.First = strings.Repeat("W", 19)
	rec.Last = strings.Repeat("M", 20)
	img := renderImage(t, rec)
	if b := img.Bounds(); b.Dx() != cardW || b.Dy() != cardH {
		t.Errorf("got %dx%d, want %dx%d", b.Dx(), b.Dy(), cardW, cardH)
	}
}

func TestRenderWithTitleAndOrg(t *testing.T) {
	rec := baseRecord()
	rec.Title = "Countess of Computing"
	rec.Org = "Analytical Engines Ltd"
	plain, err := Render(baseRecord())
	if err != nil {
		t.Fatal(err)
	}
	full, err := Render(rec)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(plain, full) {
		t.Error("title and org rows must appear on the card")
	}
}

func TestRenderConcurrent(t *testing.T) {
	rec := baseRecord()
	want, err := Render(rec)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := Render(rec)
			if err != nil {
				errs <- err
				return
			}
			if !bytes.Equal(got, want) {
				errs <- errors.New("output differs between concurrent renders")
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent render: %v", err)
	}
}
