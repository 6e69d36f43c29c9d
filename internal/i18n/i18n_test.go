// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package i18n_test

import (
	"context"
	"testing"

	"codeberg.org/oliverandrich/bootblog/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestInit(t *testing.T) {
	err := i18n.Init()
	require.NoError(t, err)
}

func TestT_Korean(t *testing.T) {
	require.NoError(t, i18n.Init())

	ctx := i18n.WithLocale(context.Background(), language.Korean)

	assert.Equal(t, "일기 목록", i18n.T(ctx, "diary_list_title"))
}

func TestT_English(t *testing.T) {
	require.NoError(t, i18n.Init())

	ctx := i18n.WithLocale(context.Background(), language.English)

	assert.Equal(t, "Diary entries", i18n.T(ctx, "diary_list_title"))
}

func TestT_UnknownKey(t *testing.T) {
	require.NoError(t, i18n.Init())

	ctx := i18n.WithLocale(context.Background(), language.English)

	result := i18n.T(ctx, "unknown_key_that_does_not_exist")
	assert.Equal(t, "unknown_key_that_does_not_exist", result)
}

func TestT_NoLocaleContext(t *testing.T) {
	require.NoError(t, i18n.Init())

	// Without WithLocale, should fall back to Korean
	result := i18n.T(context.Background(), "app_name")
	assert.Equal(t, "부트블로그", result)
}

func TestAllMessagesTranslated(t *testing.T) {
	require.NoError(t, i18n.Init())

	ids := []string{
		"app_name",
		"nav_diary",
		"nav_new_entry",
		"diary_list_title",
		"diary_list_empty",
		"diary_form_title",
		"diary_form_content",
		"diary_form_submit",
		"diary_form_unavailable",
		"error_back_home",
		"error_bad_request",
		"error_forbidden",
		"error_not_found",
		"error_method_not_allowed",
		"error_internal",
	}

	for _, tag := range i18n.Supported {
		ctx := i18n.WithLocale(context.Background(), tag)
		for _, id := range ids {
			assert.NotEqual(t, id, i18n.T(ctx, id), "missing %s translation for %s", tag, id)
		}
	}
}

func TestMatchLanguage(t *testing.T) {
	tests := []struct {
		expected       language.Tag
		acceptLanguage string
	}{
		{language.Korean, "ko"},
		{language.Korean, "ko-KR"},
		{language.English, "en"},
		{language.English, "en-US"},
		{language.English, "en-GB"},
		{language.Korean, "fr"}, // fallback to Korean
		{language.Korean, ""},   // empty defaults to Korean
		{language.English, "en, ko;q=0.9"},
		{language.Korean, "ko, en;q=0.9"},
	}

	for _, tt := range tests {
		t.Run(tt.acceptLanguage, func(t *testing.T) {
			assert.Equal(t, tt.expected, i18n.MatchLanguage(tt.acceptLanguage))
		})
	}
}

func TestWithLocale_StripsRegion(t *testing.T) {
	require.NoError(t, i18n.Init())

	ctx := i18n.WithLocale(context.Background(), language.MustParse("en-US"))

	assert.Equal(t, "en", i18n.GetLocale(ctx))
}

func TestGetLocale_Default(t *testing.T) {
	assert.Equal(t, "ko", i18n.GetLocale(context.Background()))
}
