package asset_test

import (
	"fmt"
	"testing"

	"github.com/ganot/lumina/internal/domain/asset"
	"github.com/ganot/lumina/internal/domain/concept"
	"github.com/stretchr/testify/require"
)

func TestAppendVersion_NewestFirst(t *testing.T) {
	history := asset.AppendVersion(nil, "data:image/png;base64,first")
	history = asset.AppendVersion(history, "data:image/png;base64,second")

	require.Len(t, history, 2)
	require.Equal(t, concept.AssetRef("data:image/png;base64,second"), history[0].URL)
	require.Equal(t, concept.AssetRef("data:image/png;base64,first"), history[1].URL)
	require.NotEmpty(t, history[0].ID)
}

func TestAppendVersion_CapsAtFive(t *testing.T) {
	var history []concept.AssetVersion
	for i := 1; i <= 7; i++ {
		history = asset.AppendVersion(history, concept.AssetRef(fmt.Sprintf("data:image/png;base64,v%d", i)))
	}

	require.Len(t, history, asset.HistoryLimit)
	// The five most recent, newest first
	for i := 0; i < asset.HistoryLimit; i++ {
		want := concept.AssetRef(fmt.Sprintf("data:image/png;base64,v%d", 7-i))
		require.Equal(t, want, history[i].URL)
	}
}

func TestAppendVersion_Pure(t *testing.T) {
	original := asset.AppendVersion(nil, "data:image/png;base64,a")
	_ = asset.AppendVersion(original, "data:image/png;base64,b")

	require.Len(t, original, 1)
	require.Equal(t, concept.AssetRef("data:image/png;base64,a"), original[0].URL)
}

func TestSelectVersion(t *testing.T) {
	history := asset.AppendVersion(nil, "data:image/png;base64,a")
	history = asset.AppendVersion(history, "data:image/png;base64,b")

	ref, err := asset.SelectVersion(history, "data:image/png;base64,a")
	require.NoError(t, err)
	require.Equal(t, concept.AssetRef("data:image/png;base64,a"), ref)

	_, err = asset.SelectVersion(history, "data:image/png;base64,missing")
	require.ErrorIs(t, err, asset.ErrVersionNotFound)
}

func TestVisibleHistory_FiltersSentinels(t *testing.T) {
	history := []concept.AssetVersion{
		{ID: "1", URL: "data:image/png;base64,ok"},
		{ID: "2", URL: concept.RefPending},
		{ID: "3", URL: concept.RefFailed},
		{ID: "4", URL: "data:image/png;base64,also-ok"},
	}

	visible := asset.VisibleHistory(history)
	require.Len(t, visible, 2)
	require.Equal(t, "1", visible[0].ID)
	require.Equal(t, "4", visible[1].ID)
}
