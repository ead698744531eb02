package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	mocks "github.com/openmed-ai/species-recognition/gen/mocks/recogniser"
	"github.com/openmed-ai/species-recognition/lib"
	"github.com/openmed-ai/species-recognition/lib/recogniser"
)

type ControllerSuite struct {
	suite.Suite
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) Test_controller_ListRecognisers() {
	c := controller{recognisers: map[string]clientFactory{
		"species-detection": func() recogniser.Client { return &mocks.Client{} },
		"hosted-species":    func() recogniser.Client { return &mocks.Client{} },
	}}

	s.Equal([]string{"hosted-species", "species-detection"}, c.ListRecognisers())
}

func (s *ControllerSuite) Test_controller_Recognize() {
	predictions := []lib.Prediction{
		{EntityGroup: "SPECIES", Score: 0.99, Word: "Escherichia coli", Start: 27, End: 43},
	}
	mockClient := &mocks.Client{}
	mockClient.On("Recognise", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	mockClient.On("Err").Return(nil)
	mockClient.On("Result").Return([]lib.RecordResult{
		{Index: 0, Status: lib.StatusSuccess, Entities: predictions, SpeciesCount: 1},
	})

	c := controller{recognisers: map[string]clientFactory{"species-detection": func() recogniser.Client { return mockClient }}}

	entities, err := c.Recognize(
		strings.NewReader("Blood culture positive for Escherichia coli."),
		[]lib.RecogniserOptions{{Name: "species-detection"}},
	)

	s.Nil(err)
	s.EqualValues(predictions, entities)
}

func (s *ControllerSuite) Test_controller_RecognizeUnknownRecogniser() {
	c := controller{recognisers: map[string]clientFactory{}}

	_, err := c.Recognize(
		strings.NewReader("some text"),
		[]lib.RecogniserOptions{{Name: "nope"}},
	)

	s.Require().Error(err)
	httpErr, ok := err.(HttpError)
	s.Require().True(ok)
	s.Equal(400, httpErr.code)
}

func (s *ControllerSuite) Test_controller_RecognizeEmptyBody() {
	mockClient := &mocks.Client{}
	c := controller{recognisers: map[string]clientFactory{"species-detection": func() recogniser.Client { return mockClient }}}

	_, err := c.Recognize(
		strings.NewReader("   \n"),
		[]lib.RecogniserOptions{{Name: "species-detection"}},
	)

	s.Require().Error(err)
	httpErr, ok := err.(HttpError)
	s.Require().True(ok)
	s.Equal(400, httpErr.code)
	mockClient.AssertNotCalled(s.T(), "Recognise")
}

func (s *ControllerSuite) Test_controller_RecognizeRecogniserError() {
	mockClient := &mocks.Client{}
	mockClient.On("Recognise", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	mockClient.On("Err").Return(errors.New("stream broken"))

	c := controller{recognisers: map[string]clientFactory{"species-detection": func() recogniser.Client { return mockClient }}}

	_, err := c.Recognize(
		strings.NewReader("some text"),
		[]lib.RecogniserOptions{{Name: "species-detection"}},
	)

	s.EqualError(err, "stream broken")
}

func (s *ControllerSuite) Test_controller_RecognizeUsesFreshClientPerRequest() {
	newMock := func() *mocks.Client {
		m := &mocks.Client{}
		m.On("Recognise", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		m.On("Err").Return(nil)
		m.On("Result").Return([]lib.RecordResult{})
		return m
	}

	var built []*mocks.Client
	c := controller{recognisers: map[string]clientFactory{
		"species-detection": func() recogniser.Client {
			m := newMock()
			built = append(built, m)
			return m
		},
	}}

	for i := 0; i < 2; i++ {
		_, err := c.Recognize(
			strings.NewReader("Helicobacter pylori detected."),
			[]lib.RecogniserOptions{{Name: "species-detection"}},
		)
		s.Require().Nil(err)
	}

	// each request builds its own client, so per-run state never races
	s.Require().Len(built, 2)
	s.NotSame(built[0], built[1])
	built[0].AssertNumberOfCalls(s.T(), "Recognise", 1)
	built[1].AssertNumberOfCalls(s.T(), "Recognise", 1)
}

func (s *ControllerSuite) Test_controller_RecognizeBatch() {
	results := []lib.RecordResult{
		{Index: 0, Text: "first", Status: lib.StatusSuccess, Entities: []lib.Prediction{}},
		{Index: 1, Text: "second", Status: lib.StatusSuccess, Entities: []lib.Prediction{}},
	}
	mockClient := &mocks.Client{}
	mockClient.On("Recognise", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	mockClient.On("Err").Return(nil)
	mockClient.On("Result").Return(results)

	c := controller{recognisers: map[string]clientFactory{"species-detection": func() recogniser.Client { return mockClient }}}

	got, err := c.RecognizeBatch([]string{"first", "second"}, lib.RecogniserOptions{Name: "species-detection"})

	s.Nil(err)
	s.EqualValues(results, got)
}
