package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

const usdaSearchURL = "https://api.nal.usda.gov/fdc/v1/foods/search"

// Nutrient IDs in USDA FoodData Central.
const (
	nutrientEnergy  = 1008
	nutrientProtein = 1003
	nutrientFat     = 1004
	nutrientCarbs   = 1005
	nutrientFiber   = 1079
)

type UsdaService struct {
	apiKey string
	client *http.Client
}

func NewUsdaService() *UsdaService {
	return &UsdaService{
		apiKey: os.Getenv("USDA_API_KEY"),
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// USDAFoodResult is a per-100g macro record from FoodData Central,
// ready to seed an ingredient catalog entry.
type USDAFoodResult struct {
	FdcID           int     `json:"fdc_id"`
	Name            string  `json:"name"`
	CaloriesPer100g float64 `json:"calories_per_100g"`
	ProteinPer100g  float64 `json:"protein_per_100g"`
	CarbsPer100g    float64 `json:"carbs_per_100g"`
	FatPer100g      float64 `json:"fat_per_100g"`
	FiberPer100g    float64 `json:"fiber_per_100g"`
}

type usdaSearchResponse struct {
	Foods []struct {
		FdcID         int    `json:"fdcId"`
		Description   string `json:"description"`
		FoodNutrients []struct {
			NutrientID int     `json:"nutrientId"`
			Value      float64 `json:"value"`
		} `json:"foodNutrients"`
	} `json:"foods"`
}

// Search queries FoodData Central's search endpoint for Foundation and
// SR Legacy foods. Failures surface as ExternalLookupError and are never
// retried here.
func (s *UsdaService) Search(query string) ([]USDAFoodResult, error) {
	if query == "" {
		return nil, validationErrorf("query is required")
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("api_key", s.apiKey)
	params.Add("dataType", "Foundation")
	params.Add("dataType", "SR Legacy")
	params.Set("pageSize", "20")

	resp, err := s.client.Get(usdaSearchURL + "?" + params.Encode())
	if err != nil {
		return nil, &ExternalLookupError{Service: "USDA", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ExternalLookupError{Service: "USDA", Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &ExternalLookupError{Service: "USDA", Err: fmt.Errorf("status %d: %s", resp.StatusCode, string(body))}
	}

	var sr usdaSearchResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, &ExternalLookupError{Service: "USDA", Err: err}
	}

	results := make([]USDAFoodResult, 0, len(sr.Foods))
	for _, f := range sr.Foods {
		nutrient := func(id int) float64 {
			for _, n := range f.FoodNutrients {
				if n.NutrientID == id {
					return n.Value
				}
			}
			return 0
		}
		results = append(results, USDAFoodResult{
			FdcID:           f.FdcID,
			Name:            f.Description,
			CaloriesPer100g: nutrient(nutrientEnergy),
			ProteinPer100g:  nutrient(nutrientProtein),
			CarbsPer100g:    nutrient(nutrientCarbs),
			FatPer100g:      nutrient(nutrientFat),
			FiberPer100g:    nutrient(nutrientFiber),
		})
	}
	return results, nil
}
