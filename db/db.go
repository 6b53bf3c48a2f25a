// Package db stores the custom percussion articulations of tracks in DynamoDB.
package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/google/uuid"
	"github.com/jsphweid/percmap/model"
	"github.com/npillmayer/schuko/tracing"
)

var ErrTrackNotFound = errors.New("track not found")

func tracer() tracing.Trace {
	return tracing.Select("percmap")
}

type trackItem struct {
	PK            string
	Name          string
	Articulations []model.Articulation
}

// Store keeps track override lists in a single table keyed by "PK".
type Store struct {
	client dynamodbiface.DynamoDBAPI
	table  string
}

func NewStore(endpoint, region, table string) (*Store, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String(region),
		Endpoint: aws.String(endpoint),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create a new DynamoDB session: %w", err)
	}
	return NewStoreWithClient(dynamodb.New(sess), table), nil
}

func NewStoreWithClient(client dynamodbiface.DynamoDBAPI, table string) *Store {
	return &Store{client: client, table: table}
}

// PutTrack saves a track's override list under a new id and returns the id.
func (s *Store) PutTrack(ctx context.Context, track *model.Track) (string, error) {
	id := uuid.New().String()
	item, err := dynamodbattribute.MarshalMap(trackItem{
		PK:            id,
		Name:          track.Name,
		Articulations: track.PercussionArticulations,
	})
	if err != nil {
		return "", fmt.Errorf("could not encode track: %w", err)
	}
	_, err = s.client.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return "", fmt.Errorf("error from DynamoDB: %w", err)
	}
	tracer().Infof("stored %d articulations for track %s", len(track.PercussionArticulations), id)
	return id, nil
}

// GetTrack loads a track stored by PutTrack.
func (s *Store) GetTrack(ctx context.Context, id string) (*model.Track, error) {
	res, err := s.client.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(id)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("error from DynamoDB: %w", err)
	}
	if len(res.Item) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrTrackNotFound, id)
	}
	var item trackItem
	if err := dynamodbattribute.UnmarshalMap(res.Item, &item); err != nil {
		return nil, fmt.Errorf("could not decode track %s: %w", id, err)
	}
	return &model.Track{Name: item.Name, PercussionArticulations: item.Articulations}, nil
}
