package dashboard

import (
	"strings"
	"sync"

	"breezy.app/internal/core/weather"
)

// ViewStore holds the latest display model and last error per city.
// Views are replaced whole, never edited in place.
type ViewStore struct {
	mu     sync.RWMutex
	views  map[string]weather.CityWeatherView
	errors map[string]string
}

func NewViewStore() *ViewStore {
	return &ViewStore{
		views:  make(map[string]weather.CityWeatherView),
		errors: make(map[string]string),
	}
}

func storeKey(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}

// Put replaces the view of a city and clears its last error
func (s *ViewStore) Put(view weather.CityWeatherView) {
	key := storeKey(view.City)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.views[key] = view
	delete(s.errors, key)
}

// Fail records the last error of a city and keeps its previous view
func (s *ViewStore) Fail(city, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors[storeKey(city)] = message
}

// Get returns the view of a city
func (s *ViewStore) Get(city string) (weather.CityWeatherView, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	view, ok := s.views[storeKey(city)]
	return view, ok
}

// LastError returns the last refresh error of a city
func (s *ViewStore) LastError(city string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	message, ok := s.errors[storeKey(city)]
	return message, ok
}

// Delete drops everything held for a city
func (s *ViewStore) Delete(city string) {
	key := storeKey(city)

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.views, key)
	delete(s.errors, key)
}

// Collect returns the views and errors for cities, in the given order.
// Cities without a view are skipped; error keys use the given spelling.
func (s *ViewStore) Collect(cities []string) ([]weather.CityWeatherView, map[string]string) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	views := make([]weather.CityWeatherView, 0, len(cities))
	errs := make(map[string]string)
	for _, city := range cities {
		key := storeKey(city)
		if view, ok := s.views[key]; ok {
			views = append(views, view)
		}
		if message, ok := s.errors[key]; ok {
			errs[city] = message
		}
	}
	return views, errs
}
