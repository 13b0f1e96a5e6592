package fetcher

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// The script defaultDrainCommand is a Lua script that pops journal entries from a Redis list.
// It uses the LPOP command to remove entries from the head of the list until max_entries entries
// are collected or the list is empty, whichever comes first, so a drain never races with appends.
var defaultDrainCommand = redis.NewScript(`
local key = KEYS[1]
local max_entries = tonumber(ARGV[1])
local entries = {}

for i = 1, max_entries do
	local entry = redis.call('LPOP', key)
	if not entry then
		break
	end
	table.insert(entries, entry)
end

return entries
`)

// defaultBatchSize defines the maximum number of entries popped by a single Drain call.
const defaultBatchSize = 1000

// defaultJournalKey is the Redis list used when no key is configured.
const defaultJournalKey = "panel-fetcher::transitions"

// recordTimeout bounds a single append performed from Observe, which has no context of its own.
const recordTimeout = 5 * time.Second

// RedisJournal is an Observer that appends every session transition to a Redis list,
// giving operators an audit trail of which panels failed, with which message, and how often
// users retried. Entries are read back in append order with Drain.
type RedisJournal struct {
	transcoder   Transcoder[Transition]
	rdb          redis.UniversalClient
	drainCommand *redis.Script
	logger       zerolog.Logger
	key          string
	size         int
}

// NewRedisJournal function constructs a fully configured RedisJournal instance.
// It applies all provided functional options, validates required dependencies,
// and initializes default values for any optional configuration not explicitly set.
// The function returns an error only when mandatory configuration is missing.
func NewRedisJournal(opts ...journalOptions) (*RedisJournal, error) {
	journal := &RedisJournal{logger: zerolog.Nop()}

	for _, opt := range opts {
		opt(journal)
	}

	if journal.rdb == nil {
		return nil, ErrEmptyRedisClient
	}

	if journal.drainCommand == nil {
		journal.drainCommand = defaultDrainCommand
	}

	if journal.size <= 0 {
		journal.size = defaultBatchSize
	}

	if journal.key == "" {
		journal.key = defaultJournalKey
	}

	if journal.transcoder == nil {
		journal.transcoder = &defaultTranscoder[Transition]{}
	}

	return journal, nil
}

// Key returns the Redis list the journal writes to.
func (j *RedisJournal) Key() string {
	return j.key
}

// Observe implements Observer. Storage failures are logged and never reach the session.
func (j *RedisJournal) Observe(t Transition) {
	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()

	if err := j.Record(ctx, t); err != nil {
		j.logger.Warn().Err(err).Str("url", t.URL).Str("to", t.To.String()).Msg("failed to journal transition")
	}
}

// Record appends a single transition to the journal list.
func (j *RedisJournal) Record(ctx context.Context, t Transition) error {
	entry, err := j.transcoder.Encode(t)
	if err != nil {
		return err
	}

	return j.rdb.RPush(ctx, j.key, entry).Err()
}

// Drain removes up to the configured batch size of entries from the head of the journal and
// returns them decoded, oldest first. Entries that cannot be decoded are logged and skipped so
// one corrupted entry does not hide the rest of the batch.
func (j *RedisJournal) Drain(ctx context.Context) ([]Transition, error) {
	// Run the Lua script against the journal key with the batch size as its only argument.
	result, err := j.drainCommand.Run(ctx, j.rdb, []string{j.key}, j.size).Result()
	if err != nil {
		return nil, err
	}

	transitions := make([]Transition, 0)

	// The script returns an array of bulk strings; anything else means the list was empty.
	results, ok := result.([]interface{})
	if !ok {
		return transitions, nil
	}

	for _, entry := range results {
		value, ok := entry.(string)
		if !ok {
			continue
		}

		transition, decodeErr := j.transcoder.Decode([]byte(value))
		if decodeErr != nil {
			j.logger.Warn().Err(decodeErr).Str("key", j.key).Msg("skipping undecodable journal entry")
			continue
		}

		transitions = append(transitions, transition)
	}

	return transitions, nil
}
