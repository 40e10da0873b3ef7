package amazonclient

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	amazondomain "github.com/brislydeals/deals-pipeline/infrastructure/integrator/amazon/domain"
)

// Recursos solicitados por busca; cobrem todos os campos que o pipeline lê
var searchResources = []string{
	"ItemInfo.Title",
	"ItemInfo.Features",
	"ItemInfo.ByLineInfo",
	"Images.Primary.Large",
	"Offers.Listings.Price",
	"Offers.Listings.SavingBasis",
	"CustomerReviews.StarRating",
	"CustomerReviews.Count",
	"BrowseNodeInfo.WebsiteSalesRank",
}

type searchItemsRequest struct {
	Keywords    string   `json:"Keywords"`
	ItemCount   int      `json:"ItemCount"`
	PartnerTag  string   `json:"PartnerTag"`
	PartnerType string   `json:"PartnerType"`
	Marketplace string   `json:"Marketplace"`
	Resources   []string `json:"Resources"`
}

func (c *AmazonClient) SearchItems(ctx context.Context, keyword string, limit int) (*amazondomain.SearchItemsResponse, error) {
	request := searchItemsRequest{
		Keywords:    keyword,
		ItemCount:   limit,
		PartnerTag:  c.cfg.PartnerTag,
		PartnerType: "Associates",
		Marketplace: "www.amazon." + marketplaceTLD(c.cfg.Country),
		Resources:   searchResources,
	}

	payload, err := json.Marshal(request)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar a busca")
	}

	body, err := c.do(ctx, searchTarget, payload)
	if err != nil {
		return nil, err
	}

	var response amazondomain.SearchItemsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar JSON da PA-API")
	}

	if len(response.Errors) > 0 {
		logrus.WithFields(logrus.Fields{
			"keyword": keyword,
			"code":    response.Errors[0].Code,
		}).Warn("PA-API retornou erro na busca: ", response.Errors[0].Message)
	}

	return &response, nil
}

func marketplaceTLD(country string) string {
	switch country {
	case "IT":
		return "it"
	case "ES":
		return "es"
	case "FR":
		return "fr"
	case "DE":
		return "de"
	case "UK":
		return "co.uk"
	case "US":
		return "com"
	default:
		return "it"
	}
}
