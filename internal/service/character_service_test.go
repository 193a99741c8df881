package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rickverse/pkg/config"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCharacterAPIStub(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/character/1", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"id": 1,
			"name": "Rick Sanchez",
			"status": "Alive",
			"species": "Human",
			"gender": "Male",
			"origin": {"name": "Earth (C-137)", "url": ""},
			"image": "https://example.com/rick.jpeg"
		}`)
	})
	mux.HandleFunc("/character/2", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id": 2, "name": "Morty Smith", "status": "Alive", "species": "Human"}`)
	})
	mux.HandleFunc("/location", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results": [
			{"id": 1, "name": "Earth (C-137)", "type": "Planet", "dimension": "Dimension C-137", "residents": []}
		]}`)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "There is nothing here"}`, http.StatusNotFound)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestCharacterService(baseURL string) *CharacterService {
	cfg := &config.CharacterAPIConfig{BaseURL: baseURL, Timeout: 5 * time.Second}
	return NewCharacterService(cfg, zap.NewNop())
}

func TestCharacterServiceGetByID(t *testing.T) {
	server := newCharacterAPIStub(t)
	svc := newTestCharacterService(server.URL)

	character, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, 1, character.ID)
	require.Equal(t, "Rick Sanchez", character.Name)
	require.Equal(t, "Human", character.Species)
	require.Equal(t, "Alive", character.Status)
	require.Equal(t, "Earth (C-137)", character.Origin.Name)
	require.Equal(t, "https://example.com/rick.jpeg", character.Image)
}

func TestCharacterServiceGetByIDNotFound(t *testing.T) {
	server := newCharacterAPIStub(t)
	svc := newTestCharacterService(server.URL)

	_, err := svc.GetByID(context.Background(), 99999)
	require.Error(t, err)
	require.Contains(t, err.Error(), "404")
}

func TestCharacterServiceListLocations(t *testing.T) {
	server := newCharacterAPIStub(t)
	svc := newTestCharacterService(server.URL)

	locations, err := svc.ListLocations(context.Background())
	require.NoError(t, err)
	require.Len(t, locations, 1)
	require.Equal(t, "Earth (C-137)", locations[0].Name)
	require.Equal(t, "Dimension C-137", locations[0].Dimension)
}

func TestCharacterServiceGetResidents(t *testing.T) {
	mux := http.NewServeMux()
	var server *httptest.Server
	mux.HandleFunc("/location/3", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"id": 3, "name": "Citadel of Ricks", "residents": [
			"%[1]s/character/1",
			"%[1]s/character/2",
			"%[1]s/character/404"
		]}`, server.URL)
	})
	mux.HandleFunc("/character/1", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id": 1, "name": "Rick Sanchez"}`)
	})
	mux.HandleFunc("/character/2", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id": 2, "name": "Morty Smith"}`)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})
	server = httptest.NewServer(mux)
	t.Cleanup(server.Close)

	svc := newTestCharacterService(server.URL)

	// unresolvable residents are skipped, not fatal
	residents, err := svc.GetResidents(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, residents, 2)
	require.Equal(t, "Rick Sanchez", residents[0].Name)
	require.Equal(t, "Morty Smith", residents[1].Name)
}

func TestCharacterIDFromURL(t *testing.T) {
	id, err := characterIDFromURL("https://rickandmortyapi.com/api/character/38")
	require.NoError(t, err)
	require.Equal(t, 38, id)

	id, err = characterIDFromURL("https://rickandmortyapi.com/api/character/7/")
	require.NoError(t, err)
	require.Equal(t, 7, id)

	_, err = characterIDFromURL("https://rickandmortyapi.com/api/character/rick")
	require.Error(t, err)
}
