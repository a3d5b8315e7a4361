package ui

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/bornholm/libraryms/internal/navigation"
	"github.com/pkg/errors"
)

func TestNewNavbarTemplateData(t *testing.T) {
	type testCase struct {
		Location              string
		ExpectedFinanceActive bool
		ExpectedActiveLabel   string
	}

	testCases := []testCase{
		{Location: "/", ExpectedFinanceActive: false, ExpectedActiveLabel: "Home"},
		{Location: "/books", ExpectedFinanceActive: false, ExpectedActiveLabel: "Books"},
		{Location: "/fines", ExpectedFinanceActive: true, ExpectedActiveLabel: ""},
		{Location: "/reports/2024", ExpectedFinanceActive: true, ExpectedActiveLabel: ""},
		{Location: "/search", ExpectedFinanceActive: false, ExpectedActiveLabel: ""},
	}

	catalog := navigation.NewCatalog()

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			state := navigation.NewState(tc.Location)

			data := NewNavbarTemplateData(state, catalog, NavbarOptions{PendingFines: 3, TotalRevenue: 12450})

			if e, g := tc.ExpectedFinanceActive, data.FinanceActive; e != g {
				t.Errorf("data.FinanceActive: expected '%v', got '%v'", e, g)
			}

			activeLabel := ""
			for _, item := range data.PrimaryItems {
				if !item.Active {
					if item.AriaCurrent != "" {
						t.Errorf("item '%s': inactive item with aria-current '%s'", item.Label, item.AriaCurrent)
					}
					continue
				}

				if activeLabel != "" {
					t.Errorf("more than one active primary item: '%s' and '%s'", activeLabel, item.Label)
				}

				activeLabel = item.Label

				if e, g := "page", item.AriaCurrent; e != g {
					t.Errorf("item.AriaCurrent: expected '%v', got '%v'", e, g)
				}
			}

			if e, g := tc.ExpectedActiveLabel, activeLabel; e != g {
				t.Errorf("active label: expected '%v', got '%v'", e, g)
			}

			for _, item := range data.FinanceItems {
				if !strings.HasPrefix(item.URL, NavigatePath+"?panel=finance") && !strings.Contains(item.URL, "panel=finance") {
					t.Errorf("finance item '%s': expected link to close the finance panel, got '%s'", item.Label, item.URL)
				}
			}

			if e, g := "$12,450", data.TotalRevenue; e != g {
				t.Errorf("data.TotalRevenue: expected '%v', got '%v'", e, g)
			}
		})
	}
}

func TestFinanceAriaLabel(t *testing.T) {
	type testCase struct {
		PendingFines int
		Expected     string
	}

	testCases := []testCase{
		{PendingFines: 0, Expected: "Finance menu"},
		{PendingFines: 1, Expected: "Finance menu, 1 pending fine"},
		{PendingFines: 3, Expected: "Finance menu, 3 pending fines"},
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			if e, g := tc.Expected, FinanceAriaLabel(tc.PendingFines); e != g {
				t.Errorf("FinanceAriaLabel(%d): expected '%v', got '%v'", tc.PendingFines, e, g)
			}
		})
	}
}

func TestNavbarBadgeRendering(t *testing.T) {
	tmpl, err := Templates(nil)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	catalog := navigation.NewCatalog()

	render := func(pendingFines int) string {
		state := navigation.NewState("/fines")
		state.MobileMenu.Open()
		state.FinanceMenu.Open()

		data := NewNavbarTemplateData(state, catalog, NavbarOptions{PendingFines: pendingFines, TotalRevenue: 12450})

		var buff bytes.Buffer
		if err := tmpl.ExecuteTemplate(&buff, "navbar", data); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		return buff.String()
	}

	withoutFines := render(0)

	if strings.Contains(withoutFines, "data-badge") {
		t.Errorf("expected no badge to be rendered for zero pending fines")
	}

	if !strings.Contains(withoutFines, `aria-label="Finance menu"`) {
		t.Errorf("expected finance trigger label without pending fines")
	}

	withFines := render(3)

	if e, g := 1, strings.Count(withFines, `data-badge="finance"`); e != g {
		t.Errorf("finance trigger badges: expected '%v', got '%v'", e, g)
	}

	// One in the desktop dropdown, one in the mobile panel
	if e, g := 2, strings.Count(withFines, `data-badge="item"`); e != g {
		t.Errorf("fines item badges: expected '%v', got '%v'", e, g)
	}

	if !strings.Contains(withFines, "Total revenue: $12,450") {
		t.Errorf("expected total revenue to be rendered")
	}
}

func TestNavbarClosedPanelsRendering(t *testing.T) {
	tmpl, err := Templates(nil)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	state := navigation.NewState("/books")
	data := NewNavbarTemplateData(state, navigation.NewCatalog(), NavbarOptions{PendingFines: 3})

	var buff bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buff, "navbar", data); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	html := buff.String()

	if strings.Contains(html, "Financial navigation") {
		t.Errorf("expected mobile panel not to be rendered while closed")
	}

	if strings.Contains(html, `role="menu"`) {
		t.Errorf("expected finance dropdown not to be rendered while closed")
	}

	if !strings.Contains(html, `href="/books" role="menuitem" aria-current="page"`) {
		t.Errorf("expected books link to be marked as current page")
	}
}

func TestNavbarIconsRendering(t *testing.T) {
	tmpl, err := Templates(nil)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	state := navigation.NewState("/books")
	state.MobileMenu.Open()

	data := NewNavbarTemplateData(state, navigation.NewCatalog(), NavbarOptions{})

	var buff bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buff, "navbar", data); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	html := buff.String()

	type testCase struct {
		Icon  navigation.Icon
		Count int
	}

	testCases := []testCase{
		// Brand in the bar and in the mobile panel, books item in both navs
		{Icon: navigation.IconBrand, Count: 4},
		{Icon: navigation.IconFinance, Count: 1},
		// Desktop and mobile search forms
		{Icon: navigation.IconSearch, Count: 2},
	}

	for _, tc := range testCases {
		if e, g := tc.Count, strings.Count(html, fmt.Sprintf(`<i class="fas %s"></i>`, tc.Icon)); e != g {
			t.Errorf("icon '%s': expected '%v' occurrences, got '%v'", tc.Icon, e, g)
		}
	}
}
