package db

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/jsphweid/percmap/glyph"
	"github.com/jsphweid/percmap/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDynamo struct {
	dynamodbiface.DynamoDBAPI
	items map[string]map[string]*dynamodb.AttributeValue
	fail  error
}

func (f *fakeDynamo) PutItemWithContext(_ aws.Context, in *dynamodb.PutItemInput, _ ...request.Option) (*dynamodb.PutItemOutput, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	f.items[*in.TableName+"/"+*in.Item["PK"].S] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItemWithContext(_ aws.Context, in *dynamodb.GetItemInput, _ ...request.Option) (*dynamodb.GetItemOutput, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	return &dynamodb.GetItemOutput{Item: f.items[*in.TableName+"/"+*in.Key["PK"].S]}, nil
}

func newFakeStore() (*Store, *fakeDynamo) {
	fake := &fakeDynamo{items: make(map[string]map[string]*dynamodb.AttributeValue)}
	return NewStoreWithClient(fake, "percmap-overrides"), fake
}

func TestPutAndGetTrack(t *testing.T) {
	store, _ := newFakeStore()
	track := &model.Track{
		Name: "Drums",
		PercussionArticulations: []model.Articulation{
			model.NewArticulation(3, 38, glyph.NoteheadBlack, glyph.NoteheadHalf, glyph.NoteheadWhole),
			model.NewArticulation(0, 51, glyph.NoteheadXBlack, glyph.NoteheadXBlack, glyph.NoteheadXBlack).
				WithTechnique(glyph.PictEdgeOfCymbal, model.PlacementBottom),
		},
	}

	ctx := context.Background()
	id, err := store.PutTrack(ctx, track)
	require.NoError(t, err)
	assert.Len(t, id, 36)

	got, err := store.GetTrack(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, track, got)
}

func TestGetMissingTrack(t *testing.T) {
	store, _ := newFakeStore()
	_, err := store.GetTrack(context.Background(), "nope")
	assert.True(t, errors.Is(err, ErrTrackNotFound))
}

func TestDynamoErrorsAreWrapped(t *testing.T) {
	store, fake := newFakeStore()
	boom := errors.New("boom")
	fake.fail = boom

	_, err := store.PutTrack(context.Background(), &model.Track{})
	assert.True(t, errors.Is(err, boom))
	_, err = store.GetTrack(context.Background(), "x")
	assert.True(t, errors.Is(err, boom))
}
