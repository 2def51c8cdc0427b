package repository

import (
	"math"
	"regexp"
	"strconv"

	"github.com/piresc/salesboard/internal/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// searchPrice returns the exact price a search term selects, if any
func searchPrice(search string) (float64, bool) {
	price, err := strconv.ParseFloat(search, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, false
	}
	return price, true
}

// searchFilter matches title or description by case-insensitive substring,
// or price exactly when the term is numeric
func searchFilter(filter models.TransactionFilter) bson.D {
	if filter.Search == "" {
		return bson.D{}
	}

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
	clauses := bson.A{
		bson.D{{Key: "title", Value: pattern}},
		bson.D{{Key: "description", Value: pattern}},
	}
	if price, ok := searchPrice(filter.Search); ok {
		clauses = append(clauses, bson.D{{Key: "price", Value: price}})
	}

	return bson.D{{Key: "$or", Value: clauses}}
}

func monthMatchStage(month models.MonthRange) bson.D {
	return bson.D{{Key: "$match", Value: bson.D{
		{Key: "dateOfSale", Value: bson.D{
			{Key: "$gte", Value: month.Start},
			{Key: "$lt", Value: month.Until()},
		}},
	}}}
}

func countBy(key interface{}) bson.D {
	return bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: key},
		{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
	}}}
}

func soldCond(ifSold, otherwise interface{}) bson.D {
	return bson.D{{Key: "$sum", Value: bson.D{
		{Key: "$cond", Value: bson.A{"$sold", ifSold, otherwise}},
	}}}
}

// saleStatsPipeline computes sold amount, sold count and unsold count in one pass
func saleStatsPipeline(month models.MonthRange) mongo.Pipeline {
	return mongo.Pipeline{
		monthMatchStage(month),
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalSaleAmount", Value: soldCond("$price", 0)},
			{Key: "totalSoldItems", Value: soldCond(1, 0)},
			{Key: "totalNotSoldItems", Value: soldCond(0, 1)},
		}}},
	}
}

// priceBucketExpr labels each document with its price range
func priceBucketExpr() bson.D {
	branches := make(bson.A, 0, len(models.PriceRanges))
	for _, r := range models.PriceRanges {
		branches = append(branches, bson.D{
			{Key: "case", Value: bson.D{{Key: "$and", Value: bson.A{
				bson.D{{Key: "$gte", Value: bson.A{"$price", r.Min}}},
				bson.D{{Key: "$lt", Value: bson.A{"$price", r.Max}}},
			}}}},
			{Key: "then", Value: r.Label()},
		})
	}

	return bson.D{{Key: "$switch", Value: bson.D{
		{Key: "branches", Value: branches},
		{Key: "default", Value: models.UnknownBucket},
	}}}
}

func priceBucketPipeline(month models.MonthRange) mongo.Pipeline {
	return mongo.Pipeline{
		monthMatchStage(month),
		countBy(priceBucketExpr()),
	}
}

func categoryPipeline(month models.MonthRange) mongo.Pipeline {
	return mongo.Pipeline{
		monthMatchStage(month),
		countBy("$category"),
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
}
