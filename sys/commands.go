package sys

import "strings"

// NormalizeCommandName lowercases and trims so !Ping and !ping are the same
// command.
func NormalizeCommandName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// CustomCommands returns the full custom command map (name -> response).
func (s *Store) CustomCommands() (map[string]string, error) {
	l := s.lockFor(commandsFile)
	l.Lock()
	defer l.Unlock()
	return s.loadCustomCommands()
}

func (s *Store) loadCustomCommands() (map[string]string, error) {
	cmds, err := loadDocument(s, commandsFile, func() map[string]string { return map[string]string{} })
	if err != nil {
		return nil, err
	}
	if cmds == nil {
		cmds = map[string]string{}
	}
	return cmds, nil
}

// CustomCommand looks up a single command response.
func (s *Store) CustomCommand(name string) (string, bool, error) {
	cmds, err := s.CustomCommands()
	if err != nil {
		return "", false, err
	}
	response, ok := cmds[NormalizeCommandName(name)]
	return response, ok, nil
}

// CreateCustomCommand stores a new command. Existing names are rejected so
// /createcommand never silently clobbers.
func (s *Store) CreateCustomCommand(name, response string) error {
	l := s.lockFor(commandsFile)
	l.Lock()
	defer l.Unlock()

	cmds, err := s.loadCustomCommands()
	if err != nil {
		return err
	}
	key := NormalizeCommandName(name)
	if _, ok := cmds[key]; ok {
		return ErrCommandExists
	}
	cmds[key] = response
	return saveDocument(s, commandsFile, cmds)
}

// UpdateCustomCommand replaces the response of an existing command.
func (s *Store) UpdateCustomCommand(name, response string) error {
	l := s.lockFor(commandsFile)
	l.Lock()
	defer l.Unlock()

	cmds, err := s.loadCustomCommands()
	if err != nil {
		return err
	}
	key := NormalizeCommandName(name)
	if _, ok := cmds[key]; !ok {
		return ErrUnknownCommand
	}
	cmds[key] = response
	return saveDocument(s, commandsFile, cmds)
}

// DeleteCustomCommand removes a command.
func (s *Store) DeleteCustomCommand(name string) error {
	l := s.lockFor(commandsFile)
	l.Lock()
	defer l.Unlock()

	cmds, err := s.loadCustomCommands()
	if err != nil {
		return err
	}
	key := NormalizeCommandName(name)
	if _, ok := cmds[key]; !ok {
		return ErrUnknownCommand
	}
	delete(cmds, key)
	return saveDocument(s, commandsFile, cmds)
}
